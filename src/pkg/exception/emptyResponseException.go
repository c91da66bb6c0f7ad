package exception

import "fmt"

// EmptyResponseException means the transport succeeded but the body carried nothing to decode
type EmptyResponseException struct {
    Context string
}

func NewEmptyResponseException(message string) *EmptyResponseException {
    return &EmptyResponseException{
        Context: message,
    }
}

func (e *EmptyResponseException) Error() string {
    return fmt.Sprintf("EmptyResponseException: %s", e.Context)
}
