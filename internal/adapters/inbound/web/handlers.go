package web

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/FeMonky/Impact-Prognasticator/internal/domain"
)

const maxUploadBytes = 16 << 20 // generous; G-code preambles can be large

type analyzeRequest struct {
	GCode    string `json:"gcode"`
	FileName string `json:"file_name"`
	Material string `json:"material"`
	Impact   string `json:"impact"`
}

// handleAnalyze accepts either a multipart upload (fields: gcode, material,
// impact) or a JSON body, runs one analysis and returns the result as JSON.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAnalyzeRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Material == "" {
		writeError(w, http.StatusBadRequest, "material is required")
		return
	}
	if req.Impact == "" {
		req.Impact = domain.DefaultImpactLevel
	}
	if req.FileName == "" {
		req.FileName = "upload.gcode"
	}

	result, err := s.svc.AnalyzeContent(req.FileName, req.GCode, req.Material, req.Impact)
	if err != nil {
		var unknownMat *domain.UnknownMaterialError
		var unknownImp *domain.UnknownImpactLevelError
		if errors.As(err, &unknownMat) || errors.As(err, &unknownImp) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.WithError(err).Error("analysis failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func decodeAnalyzeRequest(r *http.Request) (analyzeRequest, error) {
	var req analyzeRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return req, errors.New("invalid multipart form")
		}
		file, header, err := r.FormFile("gcode")
		if err != nil {
			return req, errors.New("missing gcode file upload")
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return req, errors.New("reading upload failed")
		}
		req.GCode = string(content)
		req.FileName = filepath.Base(header.Filename)
		req.Material = r.FormValue("material")
		req.Impact = r.FormValue("impact")
		return req, nil
	}

	if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(&req); err != nil {
		return req, errors.New("invalid JSON body")
	}
	return req, nil
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	profiles := make([]domain.MaterialProfile, 0, len(domain.MaterialNames()))
	for _, name := range domain.MaterialNames() {
		m, _ := domain.LookupMaterial(name)
		profiles = append(profiles, m)
	}
	writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleImpacts(w http.ResponseWriter, _ *http.Request) {
	scenarios := make([]domain.ImpactScenario, 0, len(domain.ImpactNames()))
	for _, name := range domain.ImpactNames() {
		sc, _ := domain.LookupImpact(name)
		scenarios = append(scenarios, sc)
	}
	writeJSON(w, http.StatusOK, scenarios)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
