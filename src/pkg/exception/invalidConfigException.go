package exception

import "fmt"

type InvalidConfigException struct {
    Context string
    Err     error
}

func NewInvalidConfigException(message string) *InvalidConfigException {
    return &InvalidConfigException{
        Context: message,
    }
}

func NewInvalidConfigExceptionWithErr(message string, err error) *InvalidConfigException {
    return &InvalidConfigException{
        Context: message,
        Err:     err,
    }
}

func (e *InvalidConfigException) Error() string {
    return fmt.Sprintf("InvalidConfigException: %s: %v", e.Context, e.Err)
}

func (e *InvalidConfigException) Unwrap() error {
    return e.Err
}
