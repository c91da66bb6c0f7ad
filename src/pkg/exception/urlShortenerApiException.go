package exception

import "fmt"

type UrlShortenerApiException struct {
    Code    int
    Message string
}

func NewUrlShortenerApiException(code int, message string) *UrlShortenerApiException {
    return &UrlShortenerApiException{
        Code:    code,
        Message: message,
    }
}

func (e *UrlShortenerApiException) Error() string {
    return fmt.Sprintf("UrlShortenerApiException: status %d: %s", e.Code, e.Message)
}
