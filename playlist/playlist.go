package playlist

import (
	"math/rand"
	"sort"
	"sync"
)

// Playlist holds the current image sequence and the position inside it.
// The sequence is either sorted or shuffled; replacing it wholesale keeps
// the position in range. All methods are safe for concurrent use, the
// slide timer and rescans run on different goroutines.
type Playlist struct {
	mu       sync.Mutex
	images   []string
	index    int
	shuffled bool
}

// New creates an empty playlist
func New() *Playlist {
	return &Playlist{}
}

// Replace swaps in a freshly scanned image set. The new set is shuffled or
// sorted according to the current order mode and the index is clamped into
// range, so a rescan that removed the current image never leaves the
// position dangling.
func (p *Playlist) Replace(images []string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.images = make([]string, len(images))
	copy(p.images, images)
	p.reorderLocked()

	if len(p.images) == 0 {
		p.index = 0
	} else if p.index >= len(p.images) {
		p.index = len(p.images) - 1
	}
}

// Current returns the image at the current position
func (p *Playlist) Current() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.images) == 0 {
		return "", false
	}
	return p.images[p.index], true
}

// Next advances the position, wrapping past the last image back to the first
func (p *Playlist) Next() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.images) == 0 {
		return "", false
	}
	p.index = (p.index + 1) % len(p.images)
	return p.images[p.index], true
}

// Prev retreats the position, wrapping before the first image to the last
func (p *Playlist) Prev() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.images) == 0 {
		return "", false
	}
	p.index = (p.index - 1 + len(p.images)) % len(p.images)
	return p.images[p.index], true
}

// Len returns the number of images in the playlist
func (p *Playlist) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.images)
}

// Position returns the current index and the total count
func (p *Playlist) Position() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index, len(p.images)
}

// Shuffled reports whether shuffled order is active
func (p *Playlist) Shuffled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.shuffled
}

// SetShuffled switches between shuffled and sorted order. Membership is
// untouched, only the ordering changes.
func (p *Playlist) SetShuffled(shuffled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.shuffled == shuffled {
		return
	}
	p.shuffled = shuffled
	p.reorderLocked()
}

// ToggleShuffled flips the order mode and returns the new state
func (p *Playlist) ToggleShuffled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.shuffled = !p.shuffled
	p.reorderLocked()
	return p.shuffled
}

func (p *Playlist) reorderLocked() {
	if len(p.images) == 0 {
		return
	}
	if p.shuffled {
		rand.Shuffle(len(p.images), func(i, j int) {
			p.images[i], p.images[j] = p.images[j], p.images[i]
		})
	} else {
		sort.Strings(p.images)
	}
}
