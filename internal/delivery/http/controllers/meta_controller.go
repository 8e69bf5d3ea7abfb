package controllers

import (
	"net/http"

	"communitycalendar/config"
	"communitycalendar/internal/delivery/http/helpers"
)

// BrandingResponse carries the header texts shown by the calendar UI.
type BrandingResponse struct {
	Badge    string `json:"badge"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type MetaController struct {
	Header config.Header
}

func NewMetaController(header config.Header) *MetaController {
	return &MetaController{Header: header}
}

// Branding godoc
// @Summary Get branding texts
// @Description Returns the configured header badge, title, and subtitle.
// @Tags meta
// @Produce json
// @Success 200 {object} BrandingResponse
// @Router /api/branding [get]
func (c *MetaController) Branding(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, BrandingResponse{
		Badge:    c.Header.Badge,
		Title:    c.Header.Title,
		Subtitle: c.Header.Subtitle,
	})
}
