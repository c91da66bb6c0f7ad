package fakeServer

import (
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "sync"
)

type ReplyMessage struct {
    Type string `json:"type"`
    Text string `json:"text"`
}

type ReplyRequest struct {
    ReplyToken string         `json:"replyToken"`
    Messages   []ReplyMessage `json:"messages"`
}

func (r ReplyRequest) Texts() []string {
    texts := make([]string, 0, len(r.Messages))
    for _, message := range r.Messages {
        texts = append(texts, message.Text)
    }
    return texts
}

// Line stands in for the LINE Messaging API reply endpoint and records each reply call
type Line struct {
    Server     *httptest.Server
    StatusCode int

    mu      sync.Mutex
    replies []ReplyRequest
}

func NewLine() *Line {
    fake := &Line{StatusCode: http.StatusOK}
    fake.Server = httptest.NewServer(http.HandlerFunc(fake.handle))
    return fake
}

func (f *Line) handle(w http.ResponseWriter, r *http.Request) {
    if r.URL.Path != "/v2/bot/message/reply" {
        http.NotFound(w, r)
        return
    }

    var reply ReplyRequest
    err := json.NewDecoder(r.Body).Decode(&reply)
    if err != nil {
        http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
        return
    }

    f.mu.Lock()
    f.replies = append(f.replies, reply)
    statusCode := f.StatusCode
    f.mu.Unlock()

    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(statusCode)
    if statusCode == http.StatusOK {
        _, _ = w.Write([]byte(`{}`))
    } else {
        _, _ = w.Write([]byte(`{"message":"Invalid reply token"}`))
    }
}

func (f *Line) Replies() []ReplyRequest {
    f.mu.Lock()
    defer f.mu.Unlock()
    return append([]ReplyRequest(nil), f.replies...)
}

func (f *Line) Close() {
    f.Server.Close()
}
