package model

import "encoding/xml"

// GnaviSearchResponse is the XML body of the Gnavi restaurant search API.
// The root element name differs between success and error responses, so it is not pinned.
type GnaviSearchResponse struct {
    XMLName       xml.Name
    TotalHitCount int          `xml:"total_hit_count"`
    Error         *GnaviError  `xml:"error"`
    Restaurants   []Restaurant `xml:"rest"`
}

type GnaviError struct {
    Code    int    `xml:"code"`
    Message string `xml:"message"`
}

// Restaurant is one search hit. Any field may be empty.
type Restaurant struct {
    Name    string `xml:"name"`
    Url     string `xml:"url"`
    Address string `xml:"address"`
    Holiday string `xml:"holiday"`
}
