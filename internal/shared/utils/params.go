package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"datarequests/internal/shared/errors"
)

// ParseBool accepts the loose boolean spellings callers send in query strings
// and form bodies. Unrecognised values are an error.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on", "y", "t":
		return true, nil
	case "false", "0", "no", "off", "n", "f", "":
		return false, nil
	}
	return false, strconv.ErrSyntax
}

// ParseIDParam reads a required path parameter.
func ParseIDParam(c *gin.Context, paramName string) (string, error) {
	v := strings.TrimSpace(c.Param(paramName))
	if v == "" {
		return "", errors.NewFieldValidationError(map[string][]string{paramName: {MsgMissingValue}})
	}
	return v, nil
}

// QueryBool reads a boolean query parameter, falling back to def when absent.
func QueryBool(c *gin.Context, key string, def bool) (bool, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	b, err := ParseBool(raw)
	if err != nil {
		return false, errors.NewFieldValidationError(map[string][]string{key: {"Must be a boolean"}})
	}
	return b, nil
}
