package controller

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body into req. An empty body binds as an empty object so
// the service reports which fields are missing.
func bindJSON(ctx *gin.Context, req interface{}) error {
	err := ctx.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Flag is a JSON boolean that also accepts other JSON values by truthiness: null, 0, ""
// and empty arrays or objects are false, anything else is true.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(t)
	case float64:
		*f = t != 0
	case string:
		*f = t != ""
	case []interface{}:
		*f = len(t) > 0
	case map[string]interface{}:
		*f = len(t) > 0
	}
	return nil
}
