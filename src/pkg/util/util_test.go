package util

import (
    "testing"
)

func TestIsEmptyString(t *testing.T) {
    testCases := []struct {
        input    string
        expected bool
    }{
        {"", true},
        {"   ", true},
        {"\n\t", true},
        {"a", false},
        {" a ", false},
    }

    for _, tc := range testCases {
        if IsEmptyString(tc.input) != tc.expected {
            t.Errorf("For input %q, expected %v", tc.input, tc.expected)
        }
    }
}

func TestRedactQuery(t *testing.T) {
    result := RedactQuery("https://api.example.com/search/?keyid=secret&latitude=35")
    if result != "https://api.example.com/search/" {
        t.Errorf("Expected query to be stripped, but got %s", result)
    }

    result = RedactQuery("https://api.example.com/search/")
    if result != "https://api.example.com/search/" {
        t.Errorf("Expected URI without query to be unchanged, but got %s", result)
    }
}
