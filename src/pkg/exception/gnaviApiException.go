package exception

import "fmt"

type GnaviApiException struct {
    Code    int
    Message string
}

func NewGnaviApiException(code int, message string) *GnaviApiException {
    return &GnaviApiException{
        Code:    code,
        Message: message,
    }
}

func (e *GnaviApiException) Error() string {
    return fmt.Sprintf("GnaviApiException: status %d: %s", e.Code, e.Message)
}
