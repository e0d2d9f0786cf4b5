package handlers

import (
	"bufio"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"news-management/internal/apperr"
	"news-management/internal/i18n"
	"news-management/internal/logger"
	helpers "news-management/internal/utils/helpres"

	"go.uber.org/zap"
)

const dayLayout = "2006-01-02"

// AdminLogsHandler читает JSON-логи сервиса: текущий app.log и ротированные
// lumberjack-файлы app-<timestamp>.log[.gz]. День строки берётся из поля time.
type AdminLogsHandler struct {
	base
	dir string
}

func NewAdminLogsHandler(dir string, tr *i18n.Translator) *AdminLogsHandler {
	if dir == "" {
		dir = "logs"
	}
	return &AdminLogsHandler{base: base{tr: tr}, dir: dir}
}

type logLine struct {
	Level string `json:"level"`
	Time  string `json:"time"`
}

func (l logLine) day() string {
	if len(l.Time) < len(dayLayout) {
		return ""
	}
	return l.Time[:len(dayLayout)]
}

// Days godoc
// @Summary Дни, за которые есть логи
// @Tags admin-logs
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} helpers.Response
// @Router /admin/logs/days [get]
func (h *AdminLogsHandler) Days(w http.ResponseWriter, r *http.Request) {
	seen := map[string]struct{}{}
	err := h.scan(func(_ []byte, line logLine) bool {
		if d := line.day(); d != "" {
			seen[d] = struct{}{}
		}
		return true
	})
	if err != nil {
		h.notFound(w, r, err)
		return
	}
	days := make([]string, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Strings(days)
	helpers.JSON(w, http.StatusOK, map[string][]string{"days": days})
}

// Logs godoc
// @Summary Логи за день
// @Tags admin-logs
// @Security ApiKeyAuth
// @Produce json
// @Param day query string true "Дата (YYYY-MM-DD)"
// @Param level query string false "CSV уровней: debug,info,warn,error"
// @Param q query string false "Поиск по подстроке"
// @Param limit query int false "Лимит (по умолч. 200, макс. 1000)"
// @Param cursor query int false "Сколько подходящих строк пропустить"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Failure 404 {object} helpers.Response
// @Router /admin/logs [get]
func (h *AdminLogsHandler) Logs(w http.ResponseWriter, r *http.Request) {
	day, ok := h.day(w, r)
	if !ok {
		return
	}
	query := r.URL.Query()
	levels := levelSet(query.Get("level"))
	needle := strings.ToLower(strings.TrimSpace(query.Get("q")))
	limit := clampAtoi(query.Get("limit"), 200, 1, 1000)
	cursor := clampAtoi(query.Get("cursor"), 0, 0, 10_000_000)

	skipped := 0
	items := []json.RawMessage{}
	err := h.scan(func(raw []byte, line logLine) bool {
		if line.day() != day {
			return true
		}
		if len(levels) > 0 && !levels[strings.ToUpper(line.Level)] {
			return true
		}
		if needle != "" && !strings.Contains(strings.ToLower(string(raw)), needle) {
			return true
		}
		if skipped < cursor {
			skipped++
			return true
		}
		items = append(items, append(json.RawMessage{}, raw...))
		return len(items) < limit
	})
	if err != nil {
		h.notFound(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{
		"day":         day,
		"items":       items,
		"next_cursor": cursor + len(items),
	})
}

// Stats godoc
// @Summary Количество записей по уровням за день
// @Tags admin-logs
// @Security ApiKeyAuth
// @Produce json
// @Param day query string true "Дата (YYYY-MM-DD)"
// @Success 200 {object} helpers.Response
// @Failure 400 {object} helpers.Response
// @Router /admin/logs/stats [get]
func (h *AdminLogsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	day, ok := h.day(w, r)
	if !ok {
		return
	}
	counts := map[string]int{}
	total := 0
	err := h.scan(func(_ []byte, line logLine) bool {
		if line.day() == day && line.Level != "" {
			counts[strings.ToUpper(line.Level)]++
			total++
		}
		return true
	})
	if err != nil {
		h.notFound(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]any{"day": day, "total": total, "levels": counts})
}

func (h *AdminLogsHandler) day(w http.ResponseWriter, r *http.Request) (string, bool) {
	day := r.URL.Query().Get("day")
	if _, err := time.Parse(dayLayout, day); err != nil {
		h.fail(w, r, http.StatusBadRequest, apperr.BadLogDay)
		return "", false
	}
	return day, true
}

func (h *AdminLogsHandler) notFound(w http.ResponseWriter, r *http.Request, err error) {
	logger.WithCtx(r.Context()).Warn("Логи недоступны", zap.String("dir", h.dir), zap.Error(err))
	h.fail(w, r, http.StatusNotFound, apperr.NotFoundLogs)
}

// files возвращает ротированные файлы по возрастанию имени, app.log последним.
func (h *AdminLogsHandler) files() ([]string, error) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		return nil, err
	}
	var rotated []string
	current := ""
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case name == "app.log":
			current = filepath.Join(h.dir, name)
		case strings.HasPrefix(name, "app-") && (strings.HasSuffix(name, ".log") || strings.HasSuffix(name, ".log.gz")):
			rotated = append(rotated, filepath.Join(h.dir, name))
		}
	}
	sort.Strings(rotated)
	if current != "" {
		rotated = append(rotated, current)
	}
	if len(rotated) == 0 {
		return nil, os.ErrNotExist
	}
	return rotated, nil
}

// scan проходит по строкам всех файлов; не-JSON строки пропускаются.
// handle возвращает false, чтобы остановить чтение.
func (h *AdminLogsHandler) scan(handle func(raw []byte, line logLine) bool) error {
	files, err := h.files()
	if err != nil {
		return err
	}
	for _, path := range files {
		if !scanFile(path, handle) {
			return nil
		}
	}
	return nil
}

func scanFile(path string, handle func(raw []byte, line logLine) bool) bool {
	f, err := os.Open(path)
	if err != nil {
		logger.Log.Warn("Не удалось открыть лог-файл", zap.String("path", path), zap.Error(err))
		return true
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			logger.Log.Warn("Битый gzip лог-файл", zap.String("path", path), zap.Error(err))
			return true
		}
		defer gz.Close()
		reader = gz
	}

	sc := bufio.NewScanner(reader)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var line logLine
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			continue
		}
		if !handle(sc.Bytes(), line) {
			return false
		}
	}
	return true
}

func levelSet(csv string) map[string]bool {
	if csv == "" {
		return nil
	}
	set := map[string]bool{}
	for _, p := range strings.Split(csv, ",") {
		if p = strings.TrimSpace(p); p != "" {
			set[strings.ToUpper(p)] = true
		}
	}
	return set
}

func clampAtoi(s string, def, lo, hi int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return max(lo, min(v, hi))
}
