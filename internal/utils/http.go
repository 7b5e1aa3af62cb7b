package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ExtractIDFromPath retrieves a path parameter value and removes file extensions like ".json".
func ExtractIDFromPath(r *http.Request, paramName string) string {
	rawID := r.PathValue(paramName)
	return strings.Split(rawID, ".json")[0]
}

// ParseIntParam retrieves an integer value from the provided URL query parameters.
// A missing key returns nil; an invalid value records a field error and returns nil.
func ParseIntParam(params url.Values, key string, fieldErrors map[string][]string) (*int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return nil, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return nil, fieldErrors
	}
	return &n, fieldErrors
}
