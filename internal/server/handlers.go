package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/smartmcq/mcqgen/internal/domain"
	"github.com/smartmcq/mcqgen/internal/export"
	"github.com/smartmcq/mcqgen/internal/extract"
	"github.com/smartmcq/mcqgen/internal/log"
	"github.com/smartmcq/mcqgen/internal/normalize"
)

const previewLimit = 3

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// handleAuth exchanges the access code for a session token.
func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccessCode string `json:"access_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if !s.auth.CheckCode(req.AccessCode) {
		http.Error(w, "invalid access code", http.StatusUnauthorized)
		return
	}
	sid := s.store.Create()
	token, err := s.auth.IssueToken(sid)
	if err != nil {
		http.Error(w, "issue token", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token, "session_id": sid})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
		Level   string `json:"level"`
		Grade   string `json:"grade"`
		NumMCQs int    `json:"num_mcqs"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.NumMCQs <= 0 {
		req.NumMCQs = 10
	}
	if req.NumMCQs > 50 {
		http.Error(w, "at most 50 questions per request", http.StatusBadRequest)
		return
	}

	raw, err := s.generator.Generate(r.Context(), domain.GenerationParams{
		Content: req.Content,
		Level:   req.Level,
		Grade:   req.Grade,
		NumMCQs: req.NumMCQs,
	})
	if err != nil {
		log.Debugf(log.Basic, "server: %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	meta := domain.GenerationMeta{
		Level:       req.Level,
		Grade:       req.Grade,
		NumMCQs:     req.NumMCQs,
		GeneratedAt: time.Now(),
	}
	sid := sessionIDFrom(r.Context())
	if !s.store.SetGeneration(sid, raw, meta) {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"raw":   raw,
		"count": len(normalize.Normalize(raw)),
		"meta":  meta,
	})
}

func (s *Server) handleGetMCQs(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(sessionIDFrom(r.Context()))
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"raw": sess.RawMCQs, "meta": sess.Meta})
}

// handlePutMCQs replaces the raw buffer wholesale; the next preview or
// export re-normalizes from scratch.
func (s *Server) handlePutMCQs(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Raw string `json:"raw"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if !s.store.ReplaceText(sessionIDFrom(r.Context()), req.Raw) {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(normalize.Normalize(req.Raw))})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(sessionIDFrom(r.Context()))
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}

	limit := previewLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	examMode := r.URL.Query().Get("exam_mode") == "true"

	records := normalize.Normalize(sess.RawMCQs)
	total := len(records)
	if len(records) > limit {
		records = records[:limit]
	}
	if examMode {
		for i := range records {
			records[i].Answer = ""
			records[i].Explanation = ""
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"total": total, "records": records})
}

func (s *Server) exportOptions(r *http.Request) domain.ExportOptions {
	return domain.ExportOptions{
		IncludeAnswers: r.URL.Query().Get("include_answers") != "false",
		ExamMode:       r.URL.Query().Get("exam_mode") == "true",
	}
}

// sendFile buffers the whole document before writing any response
// bytes, so an encoder failure yields a clean error and never a
// truncated download.
func sendFile(w http.ResponseWriter, contentType, filename string, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.Debugf(log.Basic, "server: %v", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(sessionIDFrom(r.Context()))
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}
	records := normalize.Normalize(sess.RawMCQs)
	name := "mcqs_" + time.Now().Format("20060102_150405") + ".csv"
	sendFile(w, "text/csv", name, func(out io.Writer) error {
		return export.WriteCSV(out, records, sess.RawMCQs, sess.Meta)
	})
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(sessionIDFrom(r.Context()))
	if !ok {
		http.Error(w, "unknown session", http.StatusUnauthorized)
		return
	}
	records := normalize.Normalize(sess.RawMCQs)
	opts := s.exportOptions(r)
	name := "mcqs_" + time.Now().Format("20060102_150405") + ".pdf"
	sendFile(w, "application/pdf", name, func(out io.Writer) error {
		return export.WritePDF(out, records, sess.RawMCQs, sess.Meta, opts)
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "read upload", http.StatusBadRequest)
		return
	}
	content, err := extract.FromUpload(header.Filename, data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"content": content, "chars": len(content)})
}
