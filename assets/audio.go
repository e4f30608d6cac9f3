package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Handle is an asset that may still be loading.
type Handle interface {
	IsReady() bool
}

const (
	soundPending int32 = iota
	soundReady
	soundFailed
)

// SoundHandle is a sound effect decoded to 16-bit stereo PCM in the
// background. The zero value is a handle that never becomes ready.
type SoundHandle struct {
	path  string
	state atomic.Int32
	pcm   []byte
	err   error
}

// NewReadySound wraps already decoded PCM.
func NewReadySound(pcm []byte) *SoundHandle {
	h := &SoundHandle{pcm: pcm}
	h.state.Store(soundReady)
	return h
}

func (h *SoundHandle) IsReady() bool {
	return h != nil && h.state.Load() == soundReady
}

// PCM returns the decoded bytes, or nil while the handle is not ready.
func (h *SoundHandle) PCM() []byte {
	if !h.IsReady() {
		return nil
	}
	return h.pcm
}

// Err returns the decode error once loading has failed.
func (h *SoundHandle) Err() error {
	if h == nil || h.state.Load() != soundFailed {
		return nil
	}
	return h.err
}

func (h *SoundHandle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

func (h *SoundHandle) finish(pcm []byte, err error) {
	if err != nil {
		h.err = err
		h.state.Store(soundFailed)
		return
	}
	h.pcm = pcm
	h.state.Store(soundReady)
}

// AudioLoader decodes sound effects from a file system and keeps them by id.
type AudioLoader struct {
	fsys       fs.FS
	sampleRate int

	mu     sync.Mutex
	sounds map[cfg.SoundID]*SoundHandle
	wg     sync.WaitGroup
}

// NewAudioLoader creates a loader reading from fsys and resampling to sampleRate.
func NewAudioLoader(fsys fs.FS, sampleRate int) *AudioLoader {
	return &AudioLoader{
		fsys:       fsys,
		sampleRate: sampleRate,
		sounds:     make(map[cfg.SoundID]*SoundHandle),
	}
}

// Load starts decoding p in the background and registers the handle under id.
// Loading the same id twice returns the first handle.
func (l *AudioLoader) Load(id cfg.SoundID, p string) *SoundHandle {
	l.mu.Lock()
	if h, ok := l.sounds[id]; ok {
		l.mu.Unlock()
		return h
	}
	h := &SoundHandle{path: p}
	l.sounds[id] = h
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		pcm, err := l.decodeFile(p)
		if err != nil {
			log.Printf("[audio] load %s: %v", p, err)
		}
		h.finish(pcm, err)
	}()
	return h
}

// LoadAll starts loading every path in paths.
func (l *AudioLoader) LoadAll(paths map[cfg.SoundID]string) {
	for id, p := range paths {
		l.Load(id, p)
	}
}

// Sound returns the handle registered under id.
func (l *AudioLoader) Sound(id cfg.SoundID) (*SoundHandle, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	h, ok := l.sounds[id]
	return h, ok
}

// Wait blocks until every started load has finished.
func (l *AudioLoader) Wait() {
	l.wg.Wait()
}

func (l *AudioLoader) decodeFile(p string) ([]byte, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	return DecodePCM(p, data, l.sampleRate)
}

// ErrUnsupportedFormat is returned for files that are not wav, ogg or mp3.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// DecodePCM decodes a wav, ogg or mp3 file, chosen by name's extension, into
// 16-bit stereo PCM at sampleRate.
func DecodePCM(name string, data []byte, sampleRate int) ([]byte, error) {
	var (
		stream io.Reader
		err    error
	)

	ext := strings.ToLower(path.Ext(name))
	switch ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", name, err)
	}
	return decoded, nil
}
