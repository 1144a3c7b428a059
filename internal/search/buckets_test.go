package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nationalarchives/catalogue-search/pkg/forms"
)

func TestBucketLabelWithCount(t *testing.T) {
	b := Bucket{Label: "Records at the National Archives", RecordCount: 26008838}
	got := b.LabelWithCount()
	want := "Records at the National Archives (26,008,838)"
	if got != want {
		t.Errorf("LabelWithCount() = %q, want %q", got, want)
	}
}

func TestBucketListGet(t *testing.T) {
	list := CatalogueBuckets()

	bucket, err := list.Get(BucketTNA)
	if err != nil {
		t.Fatalf("Get(tna) returned error: %v", err)
	}
	if bucket.Key != BucketTNA {
		t.Errorf("Get(tna) returned bucket %q", bucket.Key)
	}

	if _, err := list.Get("unknown"); err == nil {
		t.Error("Get(unknown) did not return an error")
	}
}

func TestBucketListUpdateForDisplay(t *testing.T) {
	list := CatalogueBuckets()
	list.UpdateForDisplay("ufo sightings", map[string]int{BucketTNA: 120, BucketNonTNA: 3}, BucketNonTNA)

	tna, _ := list.Get(BucketTNA)
	if tna.RecordCount != 120 {
		t.Errorf("tna count = %d, want 120", tna.RecordCount)
	}
	if tna.IsCurrent {
		t.Error("tna bucket marked current")
	}
	if !strings.Contains(tna.Href, "group=tna") || !strings.Contains(tna.Href, "q=ufo+sightings") {
		t.Errorf("tna href = %q", tna.Href)
	}

	nonTNA, _ := list.Get(BucketNonTNA)
	if !nonTNA.IsCurrent {
		t.Error("nonTna bucket not marked current")
	}
}

func TestBucketListUpdateForDisplayWithoutResults(t *testing.T) {
	list := CatalogueBuckets()
	list.UpdateForDisplay("", nil, BucketTNA)

	tna, _ := list.Get(BucketTNA)
	if tna.RecordCount != 0 {
		t.Errorf("tna count = %d, want 0", tna.RecordCount)
	}
	if tna.Href != "?group=tna" {
		t.Errorf("tna href = %q, want ?group=tna", tna.Href)
	}
}

func TestBucketListAsChoices(t *testing.T) {
	want := []forms.Choice{
		{Value: "tna", Label: "Records at the National Archives"},
		{Value: "nonTna", Label: "Records at other UK archives"},
	}
	if diff := cmp.Diff(want, CatalogueBuckets().AsChoices()); diff != "" {
		t.Errorf("AsChoices() mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogueBucketsReturnsFreshCopies(t *testing.T) {
	first := CatalogueBuckets()
	first.UpdateForDisplay("q", map[string]int{BucketTNA: 99}, BucketTNA)

	second := CatalogueBuckets()
	tna, _ := second.Get(BucketTNA)
	if tna.RecordCount != 0 {
		t.Error("display update leaked into a fresh bucket list")
	}
}
