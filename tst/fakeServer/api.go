package fakeServer

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "sync"
)

type GnaviRestaurant struct {
    Name    string
    Url     string
    Address string
    Holiday string
}

func GnaviRestaurantsXml(restaurants ...GnaviRestaurant) string {
    var sb strings.Builder
    sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?><response>`)
    sb.WriteString(fmt.Sprintf(`<total_hit_count>%d</total_hit_count>`, len(restaurants)))
    for _, r := range restaurants {
        sb.WriteString("<rest>")
        writeXmlElement(&sb, "name", r.Name)
        writeXmlElement(&sb, "url", r.Url)
        writeXmlElement(&sb, "address", r.Address)
        writeXmlElement(&sb, "holiday", r.Holiday)
        sb.WriteString("</rest>")
    }
    sb.WriteString("</response>")
    return sb.String()
}

func writeXmlElement(sb *strings.Builder, name string, value string) {
    value = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(value)
    sb.WriteString("<" + name + ">" + value + "</" + name + ">")
}

func GnaviErrorXml(code int, message string) string {
    return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?><gnavi><error><code>%d</code><message>%s</message></error></gnavi>`, code, message)
}

// Gnavi serves a fixed search response body
type Gnavi struct {
    Server *httptest.Server

    mu       sync.Mutex
    body     string
    requests []*http.Request
}

func NewGnavi(body string) *Gnavi {
    fake := &Gnavi{body: body}
    fake.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        fake.mu.Lock()
        fake.requests = append(fake.requests, r)
        body := fake.body
        fake.mu.Unlock()

        w.Header().Set("Content-Type", "application/xml; charset=UTF-8")
        _, _ = w.Write([]byte(body))
    }))
    return fake
}

func (f *Gnavi) Requests() []*http.Request {
    f.mu.Lock()
    defer f.mu.Unlock()
    return append([]*http.Request(nil), f.requests...)
}

func (f *Gnavi) Close() {
    f.Server.Close()
}

// UrlShortener maps known long URLs to short ones and answers an API error for anything else
type UrlShortener struct {
    Server *httptest.Server
}

func NewUrlShortener(shortUrls map[string]string) *UrlShortener {
    return &UrlShortener{
        Server: httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            var request struct {
                LongUrl string `json:"longUrl"`
            }
            _ = json.NewDecoder(r.Body).Decode(&request)

            w.Header().Set("Content-Type", "application/json")
            shortUrl, ok := shortUrls[request.LongUrl]
            if !ok {
                w.WriteHeader(http.StatusBadRequest)
                _, _ = w.Write([]byte(`{"error":{"code":400,"message":"Invalid Value"}}`))
                return
            }
            _ = json.NewEncoder(w).Encode(map[string]string{"kind": "urlshortener#url", "id": shortUrl, "longUrl": request.LongUrl})
        })),
    }
}

func (f *UrlShortener) Close() {
    f.Server.Close()
}
