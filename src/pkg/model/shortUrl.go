package model

type ShortenUrlRequest struct {
    LongUrl string `json:"longUrl"`
}

type ShortenUrlResponse struct {
    Id      string           `json:"id"`
    LongUrl string           `json:"longUrl,omitempty"`
    Error   *ShortenUrlError `json:"error,omitempty"`
}

type ShortenUrlError struct {
    Code    int    `json:"code"`
    Message string `json:"message"`
}
