package datarequest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "datarequests/internal/shared/errors"
	"datarequests/internal/shared/utils"
)

// actionParams is the loosely typed parameter bag of an RPC call: the JSON
// object of a POST body, or the query string of a GET.
type actionParams map[string]interface{}

func readActionParams(c *gin.Context) (actionParams, error) {
	params := actionParams{}

	if c.Request.Method == http.MethodGet {
		for key, values := range c.Request.URL.Query() {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
		return params, nil
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&params); err != nil {
		if errors.Is(err, io.EOF) {
			return actionParams{}, nil
		}
		return nil, apperrors.NewBadRequestError("Request body must be a JSON object", err.Error())
	}
	if params == nil {
		params = actionParams{}
	}
	return params, nil
}

// String returns the parameter as text. Absent and null values are empty.
func (p actionParams) String(key string) string {
	switch v := p[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// Bool accepts JSON booleans and the usual textual spellings.
func (p actionParams) Bool(key string) (bool, error) {
	switch v := p[key].(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	default:
		b, err := utils.ParseBool(p.String(key))
		if err != nil {
			return false, apperrors.NewFieldValidationError(map[string][]string{key: {"Must be a boolean"}})
		}
		return b, nil
	}
}
