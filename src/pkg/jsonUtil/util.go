package jsonUtil

import (
    "encoding/json"
)

func AnyToJson(obj any) string {
    return string(AnyToJsonObject(obj))
}

func AnyToJsonObject(obj any) []byte {
    jsonData, _ := json.Marshal(obj)
    return jsonData
}
