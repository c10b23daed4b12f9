package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/recera/carousel/internal/cache"
	"github.com/recera/carousel/internal/site"
	"github.com/recera/carousel/pkg/live"
)

// change is what a batch of file events requires
type change int

const (
	changeNone change = iota
	changeReload
	changeManifest
	changeRebuild
	// a config reload also rebuilds
	changeConfig
)

type devServer struct {
	configPath string

	mu     sync.RWMutex
	site   *site.Site
	wasm   []byte
	execJS []byte

	buildMutex sync.Mutex
	buildCache *cache.Cache

	hub     *live.Hub
	watcher *fsnotify.Watcher
}

func newDevCommand(configPath *string) *cobra.Command {
	var port int
	var host string

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long:  `Serves the gallery, rebuilds the controller when Go sources change and reloads connected browsers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(*configPath, host, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run the dev server on (overrides dev.port)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind the dev server to (overrides dev.host)")

	return cmd
}

func runDev(configPath, host string, port int) error {
	s, err := site.Load(configPath)
	if err != nil {
		return err
	}

	// CLI flags take precedence over the config file
	if port != 0 {
		s.Config.Dev.Port = port
	}
	if host != "" {
		s.Config.Dev.Host = host
	}

	server := &devServer{
		configPath: configPath,
		site:       s,
		buildCache: openCache(),
		hub:        live.NewHub(),
	}
	s.Cache = server.buildCache

	ctx := context.Background()
	execJS, err := site.WasmExec(ctx)
	if err != nil {
		return err
	}
	server.execJS = execJS

	if err := server.buildWASM(ctx); err != nil {
		// Keep serving so the page and the error are visible
		log.Printf("❌ Build failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()
	server.watcher = watcher

	if err := server.setupWatcher(); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.Dir, err)
	}
	go server.watchFiles(time.Duration(s.Config.Dev.DebounceMS) * time.Millisecond)

	addr := s.Config.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: server.routes(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("\n🛑 Shutting down dev server...")
		server.hub.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	log.Printf("✨ Dev server running at http://%s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *devServer) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.servePage)
	r.Get("/"+site.PageFile, s.servePage)
	r.Get("/"+site.WasmFile, s.serveWASM)
	r.Get("/"+site.ExecFile, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Write(s.execJS)
	})
	r.Handle(live.Path, s.hub)

	// Images and anything else the manifest references
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		dir := s.site.Dir
		s.mu.RUnlock()
		w.Header().Set("Cache-Control", "no-store")
		http.FileServer(http.Dir(dir)).ServeHTTP(w, r)
	})

	return r
}

func (s *devServer) servePage(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	current := s.site
	s.mu.RUnlock()

	liveURL := ""
	if current.Config.Dev.LiveReload {
		liveURL = liveURLFor(r)
	}

	var buf bytes.Buffer
	if err := current.RenderPage(&buf, liveURL); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

func (s *devServer) serveWASM(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	wasm := s.wasm
	s.mu.RUnlock()

	if wasm == nil {
		http.Error(w, "controller has not been built", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/wasm")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(wasm)
}

// liveURLFor builds the websocket address on the host the page was served from
func liveURLFor(r *http.Request) string {
	scheme := "ws"
	if r.TLS != nil {
		scheme = "wss"
	}
	return scheme + "://" + r.Host + live.Path
}

func (s *devServer) buildWASM(ctx context.Context) error {
	s.buildMutex.Lock()
	defer s.buildMutex.Unlock()

	s.mu.RLock()
	current := s.site
	s.mu.RUnlock()

	log.Println("🔨 Building WASM...")
	start := time.Now()
	wasm, cached, err := current.CompileWASM(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.wasm = wasm
	s.mu.Unlock()

	if cached {
		log.Println("⚡ Using cached WASM build")
	}
	log.Printf("📦 WASM size: %s (%s)", site.FormatSize(int64(len(wasm))), time.Since(start).Round(time.Millisecond))
	return nil
}

func (s *devServer) setupWatcher() error {
	s.mu.RLock()
	root := s.site.Dir
	output := filepath.Join(root, s.site.Config.OutputDir)
	s.mu.RUnlock()

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		name := info.Name()
		if path != root && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || name == "node_modules") {
			return filepath.SkipDir
		}
		if filepath.Clean(path) == filepath.Clean(output) {
			return filepath.SkipDir
		}
		return s.watcher.Add(path)
	})
}

func (s *devServer) watchFiles(wait time.Duration) {
	debounce := time.NewTimer(0)
	<-debounce.C // drain initial timer

	var pending []fsnotify.Event

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Chmod) {
				continue
			}
			pending = append(pending, event)
			debounce.Reset(wait)

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Println("Watcher error:", err)

		case <-debounce.C:
			events := pending
			pending = nil
			if len(events) > 0 {
				s.handleFileChanges(events)
			}
		}
	}
}

// classify reports the strongest change a batch of paths requires
func classify(paths []string, configPath, manifestPath string) change {
	result := changeNone
	raise := func(c change) {
		if c > result {
			result = c
		}
	}
	for _, p := range paths {
		p = filepath.Clean(p)
		base := filepath.Base(p)
		switch {
		case p == filepath.Clean(configPath):
			raise(changeConfig)
		case p == filepath.Clean(manifestPath):
			raise(changeManifest)
		case strings.HasSuffix(base, "_test.go"):
		case base == "go.mod" || base == "go.sum" || filepath.Ext(base) == ".go":
			raise(changeRebuild)
		case isImage(base):
			raise(changeReload)
		}
	}
	return result
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".svg":
		return true
	}
	return false
}

func (s *devServer) handleFileChanges(events []fsnotify.Event) {
	paths := make([]string, 0, len(events))
	for _, e := range events {
		paths = append(paths, e.Name)
	}

	s.mu.RLock()
	manifestPath := s.site.ManifestPath()
	s.mu.RUnlock()

	switch classify(paths, s.configPath, manifestPath) {
	case changeConfig:
		log.Println("🔄 Config changed, reloading...")
		next, err := site.Load(s.configPath)
		if err != nil {
			s.reportError(err)
			return
		}
		s.mu.Lock()
		next.Cache = s.buildCache
		next.Config.Dev = s.site.Config.Dev
		s.site = next
		s.mu.Unlock()
		s.rebuildAndReload()

	case changeRebuild:
		log.Println("🔄 Go files changed, rebuilding WASM...")
		s.rebuildAndReload()

	case changeManifest:
		log.Println("🔄 Manifest changed, reloading...")
		s.mu.Lock()
		err := s.site.ReloadManifest()
		s.mu.Unlock()
		if err != nil {
			s.reportError(err)
			return
		}
		s.reload()

	case changeReload:
		log.Println("🔄 Images changed, reloading...")
		s.reload()
	}
}

func (s *devServer) rebuildAndReload() {
	if err := s.buildWASM(context.Background()); err != nil {
		s.reportError(err)
		return
	}
	log.Println("✅ Build succeeded, reloading...")
	s.reload()
}

func (s *devServer) reload() {
	n := s.hub.Reload("")
	if n > 0 {
		log.Printf("  Reloaded %d client(s)", n)
	}
}

func (s *devServer) reportError(err error) {
	log.Printf("❌ %v", err)
	s.hub.Broadcast(live.Message{Type: live.TypeError, Message: err.Error()})
}
