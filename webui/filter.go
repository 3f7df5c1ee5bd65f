package webui

import (
	"net/url"

	"algotrading-site/dto"
	"algotrading-site/services"
)

// EmptyStateMessage is rendered instead of the post grid when the current
// filter yields no posts.
const EmptyStateMessage = "No articles found in this category."

// FilterController is the blog list's client-side state: the fetched posts
// and the currently selected category. It is a plain state machine so the
// rendering layer only has to draw what Visible returns.
type FilterController struct {
	known    map[string]struct{}
	posts    []dto.BlogPost
	selected string
	hydrated bool

	// fetchSeq guards against overlapping fetches: a slow response from a
	// superseded category change must not overwrite a later one.
	fetchSeq int
}

// NewFilterController builds a controller over the known category set and
// an already-fetched post list. The selection starts at "All".
func NewFilterController(categories []string, posts []dto.BlogPost) *FilterController {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c] = struct{}{}
	}
	return &FilterController{
		known:    known,
		posts:    posts,
		selected: services.CategoryAll,
	}
}

// HydrateFromQuery applies the "category" URL parameter, once. Unknown or
// absent values leave the default selection untouched; they are ignored,
// not rejected.
func (f *FilterController) HydrateFromQuery(values url.Values) {
	if f.hydrated {
		return
	}
	f.hydrated = true

	category := values.Get("category")
	if _, ok := f.known[category]; ok {
		f.selected = category
	}
}

func (f *FilterController) SelectedCategory() string { return f.selected }

// Transition is the cosmetic enter/exit set between two rendered lists,
// keyed by stable post ID. Entering items fade/scale in, exiting items
// fade/scale out.
type Transition struct {
	Entered []string
	Exited  []string
}

// Select changes the selected category and returns the transition from the
// previously visible list.
func (f *FilterController) Select(category string) Transition {
	prev := f.Visible()
	f.selected = category
	return diff(prev, f.Visible())
}

// Visible returns the posts to display for the current selection, in fetch
// order. "All" shows everything; anything else is an exact, case-sensitive
// match on the display category.
func (f *FilterController) Visible() []dto.BlogPost {
	if f.selected == services.CategoryAll {
		return f.posts
	}
	var visible []dto.BlogPost
	for _, p := range f.posts {
		if p.Category == f.selected {
			visible = append(visible, p)
		}
	}
	return visible
}

// Empty reports whether the current filter yields no posts, in which case
// EmptyStateMessage is rendered instead of the grid.
func (f *FilterController) Empty() bool { return len(f.Visible()) == 0 }

// BeginFetch marks the start of a posts fetch and returns its sequence
// number for CompleteFetch.
func (f *FilterController) BeginFetch() int {
	f.fetchSeq++
	return f.fetchSeq
}

// CompleteFetch installs fetched posts if seq still identifies the latest
// issued fetch. Stale results are discarded. Reports whether the posts
// were applied.
func (f *FilterController) CompleteFetch(seq int, posts []dto.BlogPost) bool {
	if seq != f.fetchSeq {
		return false
	}
	f.posts = posts
	return true
}

func diff(prev, next []dto.BlogPost) Transition {
	prevIDs := make(map[string]struct{}, len(prev))
	for _, p := range prev {
		prevIDs[p.ID] = struct{}{}
	}
	nextIDs := make(map[string]struct{}, len(next))
	for _, p := range next {
		nextIDs[p.ID] = struct{}{}
	}

	var t Transition
	for _, p := range next {
		if _, ok := prevIDs[p.ID]; !ok {
			t.Entered = append(t.Entered, p.ID)
		}
	}
	for _, p := range prev {
		if _, ok := nextIDs[p.ID]; !ok {
			t.Exited = append(t.Exited, p.ID)
		}
	}
	return t
}
