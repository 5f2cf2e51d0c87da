package scraper

import (
	"strings"
	"testing"
)

func TestCleanArticleBodyJoinsParagraphs(t *testing.T) {
	doc := mustDoc(t, `
<div class="entry-content">
  <p>First paragraph.</p>
  <h2>Section heading</h2>
  <p>Second paragraph.</p>
  <script>evil()</script>
  <aside>related stuff</aside>
</div>`)

	got := cleanArticleBody(doc.Find("div.entry-content"))
	want := "First paragraph.\n\nSection heading\n\nSecond paragraph."
	if got != want {
		t.Fatalf("cleanArticleBody = %q, want %q", got, want)
	}
}

func TestCleanArticleBodySkipsBoilerplate(t *testing.T) {
	doc := mustDoc(t, `
<div class="entry-content">
  <p>Real text.</p>
  <p>© Investopaper 2025</p>
  <p>License: all rights reserved</p>
  <p>Author: desk</p>
</div>`)

	got := cleanArticleBody(doc.Find("div.entry-content"))
	if got != "Real text." {
		t.Fatalf("boilerplate paragraphs should be dropped, got %q", got)
	}
}

func TestCleanArticleBodyDropsRecommendedBlock(t *testing.T) {
	doc := mustDoc(t, `
<div class="entry-content">
  <p>Body text.</p>
  <p><strong>Recommended</strong> reads:</p>
  <p>Cross link one</p>
  <p>Cross link two</p>
  <hr/>
  <p>Closing remark.</p>
</div>`)

	got := cleanArticleBody(doc.Find("div.entry-content"))
	if strings.Contains(got, "Cross link") || strings.Contains(got, "Recommended") {
		t.Fatalf("recommended block should be removed, got %q", got)
	}
	if !strings.Contains(got, "Body text.") || !strings.Contains(got, "Closing remark.") {
		t.Fatalf("content outside the recommended block must survive, got %q", got)
	}
}

func TestCleanArticleBodyEmptyYieldsSentinel(t *testing.T) {
	doc := mustDoc(t, `<div class="entry-content"><div>only a nested div</div></div>`)
	if got := cleanArticleBody(doc.Find("div.entry-content")); got != ContentNoText {
		t.Fatalf("expected %q for empty container, got %q", ContentNoText, got)
	}
}

func TestIsContentSentinel(t *testing.T) {
	for _, s := range []string{ContentNotFound, ContentNoText, ContentError, ContentTimeout} {
		if !IsContentSentinel(s) {
			t.Fatalf("%q should be a sentinel", s)
		}
	}
	if IsContentSentinel("Regular article text") {
		t.Fatalf("regular text is not a sentinel")
	}
}
