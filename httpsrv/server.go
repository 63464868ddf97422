package httpsrv

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tutils/lcgviz/lcg"
	"github.com/tutils/lcgviz/preset"
	"github.com/tutils/lcgviz/render"
	"github.com/tutils/lcgviz/sharecode"
)

// 嵌入静态文件
//
//go:embed static/*
var staticFiles embed.FS

// APIResponse 定义统一的API响应格式
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// defaults shown when the page first loads
var defaultParams = lcg.Params{M: 16, A: 5, C: 3, Seed: 1}

// Server serves the visualization page, its JSON API and the animation stream.
type Server struct {
	opts     ServerOptions
	sessions *SessionManager
	mux      *http.ServeMux
	srv      *http.Server
}

// NewServer create a new Server
func NewServer(opts ...ServerOption) *Server {
	opt := newServerOptions(opts...)
	s := &Server{
		opts:     *opt,
		sessions: NewSessionManager(),
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("/", serveStaticFile)
	s.mux.HandleFunc("/api/generate", s.handleGenerate)
	s.mux.HandleFunc("/api/presets", s.handlePresets)
	s.mux.HandleFunc("/api/sessions", s.handleSessions)
	s.mux.HandleFunc("/api/stream", s.handleStream)

	s.srv = &http.Server{
		Addr:    opt.addr,
		Handler: s.mux,
	}
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Sessions returns the registry of running animations.
func (s *Server) Sessions() *SessionManager {
	return s.sessions
}

// ListenAndServe 启动HTTP服务器
func (s *Server) ListenAndServe() error {
	log.Printf("[INFO] 启动LCG可视化服务器")
	log.Printf("[INFO] 监听地址: %s", s.opts.addr)
	log.Printf("[INFO] 最大模数: %d", s.opts.maxModulus)
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and waits for handlers to return.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// serveStaticFile 提供静态文件服务
func serveStaticFile(w http.ResponseWriter, r *http.Request) {
	// 如果路径是根路径，重定向到index.html
	path := r.URL.Path
	if path == "/" {
		path = "/static/index.html"
	} else if !strings.HasPrefix(path, "/static/") {
		path = "/static" + path
	}

	content, err := staticFiles.ReadFile(strings.TrimPrefix(path, "/"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch filepath.Ext(path) {
	case ".html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	case ".css":
		w.Header().Set("Content-Type", "text/css")
	case ".js":
		w.Header().Set("Content-Type", "application/javascript")
	}

	w.Write(content)
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("[ERROR] 编码响应失败: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	log.Printf("[ERROR] %s %s: %v", r.RemoteAddr, r.URL.Path, err)
	writeJSON(w, status, APIResponse{Success: false, Error: err.Error()})
}

// handleGenerate 生成序列并返回统计信息
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	p, err := s.paramsFromQuery(q)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	var genOpts []lcg.GenerateOption
	if v := q.Get("max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Errorf("max: %w", err))
			return
		}
		genOpts = append(genOpts, lcg.WithMaxLength(n))
	}

	rep, err := render.NewReport(p, genOpts...)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}
	log.Printf("[INFO] %s 生成序列 %v, 长度 %d", r.RemoteAddr, p, rep.Stats.Length)
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: rep})
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.opts.presets})
}

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: s.sessions.List()})
}

var errUnknownPreset = errors.New("unknown preset")

// paramsFromQuery reads share, preset or m/a/c/seed, in that order of precedence,
// then clamps the result to what the server is willing to draw.
func (s *Server) paramsFromQuery(q url.Values) (lcg.Params, error) {
	var p lcg.Params
	switch {
	case q.Get("share") != "":
		var err error
		if p, err = sharecode.Decode(q.Get("share")); err != nil {
			return p, err
		}
	case q.Get("preset") != "":
		ps, ok := preset.Lookup(s.opts.presets, q.Get("preset"))
		if !ok {
			return p, fmt.Errorf("%w %q", errUnknownPreset, q.Get("preset"))
		}
		p = ps.Params()
	default:
		p = defaultParams
		fields := []struct {
			name string
			dst  *uint64
		}{{"m", &p.M}, {"a", &p.A}, {"c", &p.C}, {"seed", &p.Seed}}
		for _, f := range fields {
			v := q.Get(f.name)
			if v == "" {
				continue
			}
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return p, fmt.Errorf("%w: %s: %v", lcg.ErrInvalidParameter, f.name, err)
			}
			*f.dst = n
		}
	}
	return s.clamp(p), nil
}

// clamp keeps m within [1, max modulus] and seed within [0, m-1].
func (s *Server) clamp(p lcg.Params) lcg.Params {
	if p.M < 1 {
		p.M = 1
	}
	if p.M > s.opts.maxModulus {
		p.M = s.opts.maxModulus
	}
	if p.Seed >= p.M {
		p.Seed = p.M - 1
	}
	return p
}
