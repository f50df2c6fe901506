package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	helpers "uniformnavi/internal/utils/helpers"
)

// AdminLogsHandler serves the JSON log files written by the logger:
// the live app.log and the rotated app-<timestamp>.log[.gz] backups.
type AdminLogsHandler struct {
	LogDir    string
	Retention int // days
}

func NewAdminLogsHandler(dir string) *AdminLogsHandler {
	return &AdminLogsHandler{LogDir: dir, Retention: 14}
}

var reDay = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type logEntry struct {
	Time  string `json:"time"`
	Level string `json:"level"`
}

// ListDays
// @Summary      Days with log entries, newest last
// @Tags         admin-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Success      200 {object} helpers.Response
// @Router       /api/admin/logs/days [get]
func (h *AdminLogsHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	oldest := time.Now().AddDate(0, 0, -(h.Retention - 1)).Format("2006-01-02")

	seen := map[string]bool{}
	h.eachLine(h.logFiles(""), func(raw []byte) bool {
		var entry logEntry
		if json.Unmarshal(raw, &entry) != nil || len(entry.Time) < 10 {
			return true
		}
		if day := entry.Time[:10]; reDay.MatchString(day) && day >= oldest {
			seen[day] = true
		}
		return true
	})

	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)
	helpers.JSON(w, http.StatusOK, map[string]any{"days": days})
}

// GetLogs
// @Summary      Log entries of one day, newest first
// @Tags         admin-logs
// @Security     ApiKeyAuth
// @Produce      json
// @Param        day    query string true  "YYYY-MM-DD"
// @Param        level  query string false "Comma separated levels (info,warn,error)"
// @Param        q      query string false "Substring filter"
// @Param        limit  query int    false "Default 200, max 1000"
// @Param        cursor query int    false "Matching entries to skip, counted from the newest"
// @Success      200 {object} helpers.Response
// @Failure      404 {object} helpers.Response
// @Router       /api/admin/logs [get]
func (h *AdminLogsHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day := q.Get("day")
	if !reDay.MatchString(day) {
		helpers.Error(w, http.StatusBadRequest, "日付は YYYY-MM-DD 形式で指定してください")
		return
	}

	levels := map[string]bool{}
	for _, l := range strings.Split(q.Get("level"), ",") {
		if l = strings.ToUpper(strings.TrimSpace(l)); l != "" {
			levels[l] = true
		}
	}
	needle := strings.ToLower(strings.TrimSpace(q.Get("q")))
	limit := clampAtoi(q.Get("limit"), 200, 1, 1000)
	cursor := clampAtoi(q.Get("cursor"), 0, 0, 10_000_000)

	files := h.logFiles(day)
	if len(files) == 0 {
		helpers.Error(w, http.StatusNotFound, "ログが見つかりません")
		return
	}

	// files and lines are read oldest first
	var matched []json.RawMessage
	h.eachLine(files, func(raw []byte) bool {
		if needle != "" && !strings.Contains(strings.ToLower(string(raw)), needle) {
			return true
		}
		var entry logEntry
		// console lines are not JSON
		if err := json.Unmarshal(raw, &entry); err != nil {
			return true
		}
		if !strings.HasPrefix(entry.Time, day) {
			return true
		}
		if len(levels) > 0 && !levels[strings.ToUpper(entry.Level)] {
			return true
		}
		matched = append(matched, append(json.RawMessage{}, raw...))
		return true
	})

	items := []json.RawMessage{}
	for i := len(matched) - 1 - cursor; i >= 0 && len(items) < limit; i-- {
		items = append(items, matched[i])
	}

	resp := map[string]any{
		"day":   day,
		"items": items,
		"total": len(matched),
	}
	if next := cursor + len(items); next < len(matched) {
		resp["nextCursor"] = next
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// logFiles returns the lumberjack backups oldest first, then app.log.
// Backups are named app-<rotation time>.log[.gz] and only hold entries
// written before that time, so backups rotated well before day are skipped.
// The names are UTC while entry times are local, hence the one day margin.
// An empty day keeps every file.
func (h *AdminLogsHandler) logFiles(day string) []string {
	entries, err := os.ReadDir(h.LogDir)
	if err != nil {
		return nil
	}

	cutoff := ""
	if d, err := time.Parse("2006-01-02", day); err == nil {
		cutoff = d.AddDate(0, 0, -1).Format("2006-01-02")
	}

	var backups []string
	current := ""
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case name == "app.log":
			current = filepath.Join(h.LogDir, name)
		case strings.HasPrefix(name, "app-") &&
			(strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".log.gz")):
			if rotated := strings.TrimPrefix(name, "app-"); cutoff != "" && len(rotated) >= 10 && rotated[:10] < cutoff {
				continue
			}
			backups = append(backups, filepath.Join(h.LogDir, name))
		}
	}
	sort.Strings(backups)
	if current != "" {
		backups = append(backups, current)
	}
	return backups
}

func (h *AdminLogsHandler) eachLine(files []string, handle func([]byte) bool) {
	for _, path := range files {
		if !h.scanFile(path, handle) {
			return
		}
	}
}

func (h *AdminLogsHandler) scanFile(path string, handle func([]byte) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(f)
		if err != nil {
			return true
		}
		defer gr.Close()
		reader = gr
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if !handle(sc.Bytes()) {
			return false
		}
	}
	return true
}
