// Package site assembles a gallery project into a static site: the rendered
// page, the compiled controller, wasm_exec.js and the local images.
package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/recera/carousel/internal/cache"
	"github.com/recera/carousel/internal/config"
	"github.com/recera/carousel/internal/manifest"
	"github.com/recera/carousel/internal/page"
)

// Output file names inside the build directory
const (
	WasmFile = "carousel.wasm"
	ExecFile = "wasm_exec.js"
	PageFile = "index.html"
)

// Site is a loaded gallery project
type Site struct {
	// Dir is the project directory; relative config paths resolve against it
	Dir      string
	Config   *config.Config
	Manifest *manifest.Manifest

	// Cache stores compiled controllers. Nil disables caching.
	Cache *cache.Cache
}

// Report summarizes a build
type Report struct {
	WasmSize int64
	Cached   bool
	Assets   int
	Missing  []string
}

// Load reads the config at configPath and the manifest it names
func Load(configPath string) (*Site, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := &Site{Dir: filepath.Dir(configPath), Config: cfg}
	if err := s.ReloadManifest(); err != nil {
		return nil, err
	}
	return s, nil
}

// ManifestPath returns the manifest location on disk
func (s *Site) ManifestPath() string {
	return s.path(s.Config.Manifest)
}

// ReloadManifest re-reads the manifest. On error the previous manifest is kept.
func (s *Site) ReloadManifest() error {
	m, err := manifest.Load(s.ManifestPath())
	if err != nil {
		return err
	}
	s.Manifest = m
	return nil
}

// PageOptions builds the page description. liveURL enables the live-reload
// client.
func (s *Site) PageOptions(liveURL string) (page.Options, error) {
	projects, err := s.Manifest.ControllerProjects()
	if err != nil {
		return page.Options{}, err
	}
	payload, err := s.Manifest.Payload()
	if err != nil {
		return page.Options{}, err
	}
	ctl := s.Config.Controller
	return page.Options{
		Title:          s.Manifest.Title,
		Projects:       projects,
		Payload:        payload,
		WasmURL:        WasmFile,
		ExecURL:        ExecFile,
		LiveURL:        liveURL,
		HiddenClass:    ctl.HiddenClass,
		SwipeThreshold: ctl.SwipeThreshold,
		FadeTransition: ctl.FadeTransition,
		Debug:          ctl.Debug,
	}, nil
}

// RenderPage writes index.html to w
func (s *Site) RenderPage(w io.Writer, liveURL string) error {
	o, err := s.PageOptions(liveURL)
	if err != nil {
		return err
	}
	return page.Render(w, o)
}

// CompileWASM compiles the controller package, consulting the cache first
func (s *Site) CompileWASM(ctx context.Context) ([]byte, bool, error) {
	var key string
	if s.Cache != nil {
		goVersion, err := goEnv(ctx, "GOVERSION")
		if err != nil {
			return nil, false, err
		}
		key, err = cache.KeyFromDir(s.Dir, goVersion, s.Config.WasmPackage)
		if err != nil {
			return nil, false, err
		}
		if data, ok := s.Cache.Get(key); ok {
			return data, true, nil
		}
	}

	tmp, err := os.CreateTemp("", "carousel-*.wasm")
	if err != nil {
		return nil, false, err
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	cmd := exec.CommandContext(ctx, "go", "build", "-o", tmp.Name(), s.Config.WasmPackage)
	cmd.Dir = s.Dir
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, false, fmt.Errorf("WASM build failed: %w\n%s", err, output)
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		return nil, false, err
	}
	if s.Cache != nil {
		if err := s.Cache.Put(key, data); err != nil {
			return data, false, fmt.Errorf("caching WASM: %w", err)
		}
	}
	return data, false, nil
}

// CopyAssets copies the manifest's local images into out, preserving their
// relative paths. Missing files are reported, not fatal.
func (s *Site) CopyAssets(out string) (copied int, missing []string, err error) {
	for _, rel := range s.Manifest.Assets() {
		src := s.path(filepath.FromSlash(rel))
		data, err := os.ReadFile(src)
		if os.IsNotExist(err) {
			missing = append(missing, rel)
			continue
		}
		if err != nil {
			return copied, missing, err
		}
		dst := filepath.Join(out, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return copied, missing, err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return copied, missing, err
		}
		copied++
	}
	return copied, missing, nil
}

// Build writes the complete static site to out
func (s *Site) Build(ctx context.Context, out string) (*Report, error) {
	if err := os.MkdirAll(out, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := s.RenderPage(&buf, ""); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, PageFile), buf.Bytes(), 0644); err != nil {
		return nil, err
	}

	wasm, cached, err := s.CompileWASM(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(out, WasmFile), wasm, 0644); err != nil {
		return nil, err
	}

	execJS, err := WasmExec(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(out, ExecFile), execJS, 0644); err != nil {
		return nil, err
	}

	copied, missing, err := s.CopyAssets(out)
	if err != nil {
		return nil, fmt.Errorf("copying assets: %w", err)
	}

	return &Report{
		WasmSize: int64(len(wasm)),
		Cached:   cached,
		Assets:   copied,
		Missing:  missing,
	}, nil
}

// WasmExec returns the wasm_exec.js shipped with the installed Go toolchain
func WasmExec(ctx context.Context) ([]byte, error) {
	root, err := goEnv(ctx, "GOROOT")
	if err != nil {
		return nil, err
	}
	return readWasmExec(root)
}

// readWasmExec looks in lib/wasm (Go 1.24+) then misc/wasm
func readWasmExec(goroot string) ([]byte, error) {
	for _, dir := range []string{"lib/wasm", "misc/wasm"} {
		data, err := os.ReadFile(filepath.Join(goroot, dir, ExecFile))
		if err == nil {
			return data, nil
		}
	}
	return nil, fmt.Errorf("wasm_exec.js not found under %s", goroot)
}

func goEnv(ctx context.Context, key string) (string, error) {
	out, err := exec.CommandContext(ctx, "go", "env", key).Output()
	if err != nil {
		return "", fmt.Errorf("go env %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (s *Site) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Dir, p)
}

// FormatSize renders a byte count for build logs
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
