package handlers

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeLog(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func writeGzipLog(t *testing.T, dir, name string, lines ...string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(strings.Join(lines, "\n") + "\n")); err != nil {
		t.Fatal(err)
	}
	if err := gw.Close(); err != nil {
		t.Fatal(err)
	}
}

func logLine(day, clock, level, msg string) string {
	return `{"time":"` + day + `T` + clock + `.000+0900","level":"` + level + `","message":"` + msg + `"}`
}

func logDay(offset int) string {
	return time.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

type logsPage struct {
	Data struct {
		Day        string            `json:"day"`
		Items      []json.RawMessage `json:"items"`
		Total      int               `json:"total"`
		NextCursor *int              `json:"nextCursor"`
	} `json:"data"`
}

func (p logsPage) messages() []string {
	out := make([]string, 0, len(p.Data.Items))
	for _, raw := range p.Data.Items {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &e)
		out = append(out, e.Message)
	}
	return out
}

func newLogsFixture(t *testing.T) *AdminLogsHandler {
	t.Helper()
	dir := t.TempDir()
	writeGzipLog(t, dir, "app-"+logDay(-1)+"T01-00-00.000.log.gz",
		logLine(logDay(-2), "23:00:00", "INFO", "backup"),
		logLine(logDay(-1), "00:30:00", "WARN", "rotated"),
	)
	writeLog(t, dir, "app.log",
		logLine(logDay(-1), "22:00:00", "INFO", "yesterday"),
		logDay(0)+"T08:00:00.000+0900	INFO	console line",
		logLine(logDay(0), "09:00:00", "INFO", "early"),
		logLine(logDay(0), "09:01:00", "ERROR", "request failed"),
		logLine(logDay(0), "09:02:00", "INFO", "late contact: submission stored"),
	)
	return NewAdminLogsHandler(dir)
}

func getLogs(h *AdminLogsHandler, query string) (int, logsPage) {
	rr := httptest.NewRecorder()
	h.GetLogs(rr, httptest.NewRequest(http.MethodGet, "/api/admin/logs?"+query, nil))
	var page logsPage
	_ = json.Unmarshal(rr.Body.Bytes(), &page)
	return rr.Code, page
}

func TestAdminLogsHandler_GetLogs_NewestFirst(t *testing.T) {
	h := newLogsFixture(t)

	code, page := getLogs(h, "day="+logDay(0))
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	want := "late contact: submission stored,request failed,early"
	if got := strings.Join(page.messages(), ","); got != want {
		t.Fatalf("items = %s, want %s", got, want)
	}
	if page.Data.NextCursor != nil {
		t.Errorf("no more pages expected, got cursor %d", *page.Data.NextCursor)
	}
}

func TestAdminLogsHandler_GetLogs_EarlierDayInCurrentFile(t *testing.T) {
	h := newLogsFixture(t)

	code, page := getLogs(h, "day="+logDay(-1))
	if code != http.StatusOK {
		t.Fatalf("status %d", code)
	}
	if got := strings.Join(page.messages(), ","); got != "yesterday,rotated" {
		t.Fatalf("items = %s", got)
	}

	if _, page = getLogs(h, "day="+logDay(-2)); strings.Join(page.messages(), ",") != "backup" {
		t.Fatalf("gzip backup not read: %v", page.messages())
	}
}

func TestAdminLogsHandler_GetLogs_Paging(t *testing.T) {
	h := newLogsFixture(t)

	_, first := getLogs(h, "day="+logDay(0)+"&limit=2")
	if strings.Join(first.messages(), ",") != "late contact: submission stored,request failed" {
		t.Fatalf("first page = %v", first.messages())
	}
	if first.Data.NextCursor == nil || *first.Data.NextCursor != 2 || first.Data.Total != 3 {
		t.Fatalf("cursor = %v, total = %d", first.Data.NextCursor, first.Data.Total)
	}

	_, second := getLogs(h, "day="+logDay(0)+"&limit=2&cursor=2")
	if strings.Join(second.messages(), ",") != "early" || second.Data.NextCursor != nil {
		t.Fatalf("second page = %v", second.messages())
	}
}

func TestAdminLogsHandler_GetLogs_Filters(t *testing.T) {
	h := newLogsFixture(t)

	if _, page := getLogs(h, "day="+logDay(0)+"&level=error"); strings.Join(page.messages(), ",") != "request failed" {
		t.Errorf("level filter: %v", page.messages())
	}
	if _, page := getLogs(h, "day="+logDay(0)+"&q=CONTACT"); len(page.Data.Items) != 1 {
		t.Errorf("text filter: %v", page.messages())
	}
	if code, page := getLogs(h, "day=2001-01-01"); code != http.StatusOK || len(page.Data.Items) != 0 {
		t.Errorf("day without entries: status %d, %d items", code, len(page.Data.Items))
	}
	if code, _ := getLogs(h, "day=yesterday"); code != http.StatusBadRequest {
		t.Errorf("bad day: status %d", code)
	}
	if code, _ := getLogs(NewAdminLogsHandler(t.TempDir()), "day="+logDay(0)); code != http.StatusNotFound {
		t.Errorf("no log files: status %d", code)
	}
}

func TestAdminLogsHandler_ListDays(t *testing.T) {
	h := newLogsFixture(t)
	writeLog(t, h.LogDir, "app-2001-01-01T00-00-00.000.log", logLine("2001-01-01", "00:00:00", "INFO", "ancient"))

	rr := httptest.NewRecorder()
	h.ListDays(rr, httptest.NewRequest(http.MethodGet, "/api/admin/logs/days", nil))

	var resp struct {
		Data struct {
			Days []string `json:"days"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []string{logDay(-2), logDay(-1), logDay(0)}
	if strings.Join(resp.Data.Days, ",") != strings.Join(want, ",") {
		t.Fatalf("days = %v, want %v", resp.Data.Days, want)
	}
}
