package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/acpilot/acpilot/internal/controller"
	"github.com/acpilot/acpilot/internal/rules"
	"github.com/gorilla/mux"
)

type rulesResponse struct {
	Rules []rules.Rule `json:"rules"`
	Count int          `json:"count"`
}

func (s *Server) listRules(w http.ResponseWriter, r *http.Request) {
	list, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []rules.Rule{}
	}
	writeJSON(w, http.StatusOK, rulesResponse{Rules: list, Count: len(list)})
}

func (s *Server) getRule(w http.ResponseWriter, r *http.Request) {
	id, err := ruleID(r, nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rule, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (s *Server) createRule(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRuleRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := s.Store.Create(r.Context(), req.Patch)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Controller.Refresh()
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "ruleId": id})
}

func (s *Server) updateRule(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRuleRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	id, err := ruleID(r, req.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err = s.Store.Update(r.Context(), id, req.Patch); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Controller.Refresh()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "ruleId": id})
}

func (s *Server) deleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := ruleID(r, nil)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err = s.Store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.Controller.Refresh()
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "ruleId": id})
}

// ruleID returns the rule id from the path, the "id" query parameter or the request body, in that order.
func ruleID(r *http.Request, fromBody *int) (int, error) {
	if id, ok := mux.Vars(r)["id"]; ok {
		return parseID(id)
	}
	if id := r.URL.Query().Get("id"); id != "" {
		return parseID(id)
	}
	if fromBody != nil {
		return *fromBody, nil
	}
	return 0, fmt.Errorf("%w: missing rule id", errBadRequest)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid rule id %q", errBadRequest, s)
	}
	return id, nil
}

func (s *Server) storeOperation(op func(RuleStore, context.Context) error, refresh bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := op(s.Store, r.Context()); err != nil {
			s.writeError(w, r, err)
			return
		}
		if refresh {
			s.Controller.Refresh()
		}
		s.listRules(w, r)
	}
}

type activeRuleResponse struct {
	ActiveRuleID int            `json:"activeRuleId"`
	ActiveRule   *rules.Rule    `json:"activeRule"`
	CurrentTemp  *float64       `json:"currentTemp"`
	CurrentHour  *int           `json:"currentHour"`
	ACState      rules.ACConfig `json:"acState"`
}

func (s *Server) activeRule(w http.ResponseWriter, r *http.Request) {
	resp := activeRuleResponse{
		ActiveRuleID: s.Controller.ActiveRuleID(),
		ACState:      s.Controller.AC(),
	}
	if report, ok := s.Controller.LastReport(); ok {
		resp.CurrentHour = &report.Hour
		if report.Action != controller.ActionSkipped {
			resp.CurrentTemp = &report.Temperature
		}
	}
	if resp.ActiveRuleID != controller.NoRule {
		// the rule may have been deleted since the last cycle
		if rule, err := s.Store.Get(r.Context(), resp.ActiveRuleID); err == nil {
			resp.ActiveRule = &rule
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Controller.Status())
}

// debug returns the force-transmit flag. On POST, it sets the flag to the "enabled" value of the request, or toggles it
// if no value is given.
func (s *Server) debug(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		force := !s.Controller.Force()
		if err := r.ParseForm(); err != nil {
			s.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, err))
			return
		}
		if value := r.Form.Get("enabled"); value != "" {
			var enabled *bool
			if err := boolField(&enabled)(value); err != nil {
				s.writeError(w, r, fmt.Errorf("%w: invalid enabled: %w", errBadRequest, err))
				return
			}
			force = *enabled
		}
		s.Controller.SetForce(force)
		s.logger.Info("force transmit updated", "enabled", force)
		if force {
			s.Controller.Refresh()
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"force": s.Controller.Force()})
}
