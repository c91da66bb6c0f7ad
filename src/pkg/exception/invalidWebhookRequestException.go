package exception

import "fmt"

type InvalidWebhookRequestException struct {
    Context string
    Err     error
}

func NewInvalidWebhookRequestException(message string, err error) *InvalidWebhookRequestException {
    return &InvalidWebhookRequestException{
        Context: message,
        Err:     err,
    }
}

func (e *InvalidWebhookRequestException) Error() string {
    return fmt.Sprintf("InvalidWebhookRequestException: %s: %v", e.Context, e.Err)
}

func (e *InvalidWebhookRequestException) Unwrap() error {
    return e.Err
}
