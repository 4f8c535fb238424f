package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/dropflow/internal/domain"
	"github.com/DRSN-tech/dropflow/internal/session"
	"github.com/DRSN-tech/dropflow/pkg/e"
	"github.com/DRSN-tech/dropflow/pkg/logger"
)

type PreferencesHandler struct {
	session *session.Session
	logger  logger.Logger
}

func NewPreferencesHandler(sess *session.Session, logger logger.Logger) *PreferencesHandler {
	return &PreferencesHandler{session: sess, logger: logger}
}

type setLanguageRequest struct {
	Language string `json:"language"`
}

func (p *PreferencesHandler) getPreferences(w http.ResponseWriter, r *http.Request) {
	p.writePreferences(w)
}

// toggleTheme переключает тему; выбор сохраняется и переживает перезапуск.
func (p *PreferencesHandler) toggleTheme(w http.ResponseWriter, r *http.Request) {
	if _, err := p.session.ToggleTheme(r.Context()); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	p.writePreferences(w)
}

// setLanguage устанавливает локаль; направление текста выводится из неё.
func (p *PreferencesHandler) setLanguage(w http.ResponseWriter, r *http.Request) {
	var req setLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if err := p.session.SetLanguage(r.Context(), domain.Language(req.Language)); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	p.writePreferences(w)
}

func (p *PreferencesHandler) toggleAdminMode(w http.ResponseWriter, r *http.Request) {
	p.session.ToggleAdminMode()
	p.writePreferences(w)
}

func (p *PreferencesHandler) writePreferences(w http.ResponseWriter) {
	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"theme":     string(p.session.Theme()),
		"language":  string(p.session.Language()),
		"direction": string(p.session.Direction()),
		"adminMode": p.session.AdminMode(),
	})
}
