package exception

import "fmt"

// TransportException means an outbound HTTP call produced no response at all
type TransportException struct {
    Context string
    Err     error
}

func NewTransportException(message string, err error) *TransportException {
    return &TransportException{
        Context: message,
        Err:     err,
    }
}

func (e *TransportException) Error() string {
    return fmt.Sprintf("TransportException: %s: %v", e.Context, e.Err)
}

func (e *TransportException) Unwrap() error {
    return e.Err
}
