package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/acpilot/acpilot/internal/rules"
	"github.com/acpilot/acpilot/internal/store"
)

// ruleRequest is the body of a create or update request. ID is only used by PUT /api/rules.
type ruleRequest struct {
	store.Patch
	ID *int `json:"id,omitempty"`
}

// decodeRuleRequest reads a rule request from a JSON or a form-encoded body. An empty body is an empty request.
func decodeRuleRequest(r *http.Request) (ruleRequest, error) {
	var req ruleRequest
	if r.ContentLength == 0 && r.Header.Get("Content-Type") == "" {
		return req, nil
	}
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		decoder := json.NewDecoder(r.Body)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, fmt.Errorf("%w: invalid json: %w", errBadRequest, err)
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return req, fmt.Errorf("%w: %w", errBadRequest, err)
	}
	return decodeForm(r.PostForm)
}

func decodeForm(values url.Values) (ruleRequest, error) {
	var req ruleRequest
	var err error
	p := &req.Patch
	if values.Has("name") {
		p.Name = store.VarP(values.Get("name"))
	}
	for _, field := range []struct {
		key string
		set func(string) error
	}{
		{"id", intField(&req.ID)},
		{"enabled", boolField(&p.Enabled)},
		{"acOn", boolField(&p.ACOn)},
		{"startHour", intField(&p.StartHour)},
		{"endHour", intField(&p.EndHour)},
		{"minTemp", floatField(&p.MinTemp)},
		{"maxTemp", floatField(&p.MaxTemp)},
		{"setTemp", floatField(&p.SetTemp)},
		{"fanSpeed", enumField[rules.FanSpeed](&p.FanSpeed)},
		{"mode", enumField[rules.Mode](&p.Mode)},
		{"vSwing", enumField[rules.Swing](&p.VSwing)},
		{"hSwing", enumField[rules.Swing](&p.HSwing)},
	} {
		if !values.Has(field.key) {
			continue
		}
		if err = field.set(values.Get(field.key)); err != nil {
			return req, fmt.Errorf("%w: invalid %s: %w", errBadRequest, field.key, err)
		}
	}
	return req, nil
}

func intField(target **int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err == nil {
			*target = &v
		}
		return err
	}
}

func floatField(target **float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err == nil {
			*target = &v
		}
		return err
	}
}

func boolField(target **bool) func(string) error {
	return func(s string) error {
		var v bool
		switch s {
		case "true", "on", "1":
			v = true
		case "false", "off", "0", "":
			v = false
		default:
			return fmt.Errorf("%q is not a boolean", s)
		}
		*target = &v
		return nil
	}
}

func enumField[T ~int](target **T) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err == nil {
			e := T(v)
			*target = &e
		}
		return err
	}
}
