package services

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
)

// players that can take a file path on the command line, tried in order.
var players = []string{"mpv", "mpg123", "ffplay", "afplay"}

// Player downloads pronunciation clips and plays them through whatever
// audio player the host has. Playback is fire-and-forget: no completion
// is reported, failures are only logged.
type Player struct {
	cacheDir string
	client   *http.Client
}

func NewPlayer(cacheDir string) *Player {
	return &Player{cacheDir: cacheDir, client: http.DefaultClient}
}

// Play fetches the clip at url and starts playback in the background.
func (p *Player) Play(url string) {
	go func() {
		path, err := p.fetch(url)
		if err != nil {
			log.Printf("pronunciation fetch failed: %v", err)
			return
		}
		if err := p.start(path); err != nil {
			log.Printf("pronunciation playback failed: %v", err)
		}
	}()
}

// fetch downloads the clip into the cache dir, reusing an earlier copy if
// one exists.
func (p *Player) fetch(url string) (string, error) {
	if err := os.MkdirAll(p.cacheDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(p.cacheDir, filepath.Base(url))
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	resp, err := p.client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(path)
		return "", err
	}

	return path, nil
}

func (p *Player) start(path string) error {
	for _, player := range players {
		bin, err := exec.LookPath(player)
		if err != nil {
			continue
		}
		return exec.Command(bin, path).Start()
	}
	return fmt.Errorf("no audio player found (tried %v)", players)
}
