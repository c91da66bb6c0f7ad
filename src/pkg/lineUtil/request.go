package lineUtil

import (
    "bytes"
    "encoding/base64"
    "github.com/aws/aws-lambda-go/events"
    "io"
    "net/http"
    "net/url"
)

// LambdaRequestBody returns the raw webhook body. Function URLs base64 encode bodies they consider binary.
func LambdaRequestBody(request events.LambdaFunctionURLRequest) ([]byte, error) {
    if request.IsBase64Encoded {
        return base64.StdEncoding.DecodeString(request.Body)
    }
    return []byte(request.Body), nil
}

func LambdaRequestHeader(request events.LambdaFunctionURLRequest) http.Header {
    headers := http.Header{}
    for k, v := range request.Headers {
        headers.Set(k, v)
    }
    return headers
}

// NewWebhookRequest wraps a webhook body for the SDK parser, which only reads the header and body
func NewWebhookRequest(header http.Header, body []byte) *http.Request {
    return &http.Request{
        Method:        http.MethodPost,
        URL:           &url.URL{Path: "/callback"},
        Header:        header,
        Body:          io.NopCloser(bytes.NewReader(body)),
        ContentLength: int64(len(body)),
    }
}
