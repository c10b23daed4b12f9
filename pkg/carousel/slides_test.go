package carousel

import "testing"

func TestBuildSlides(t *testing.T) {
	p := sampleProjects()[0]
	slides := BuildSlides(p)

	if len(slides) != 5 {
		t.Fatalf("expected 5 slides, got %d", len(slides))
	}

	tests := []struct {
		index int
		want  Slide
	}{
		{0, Slide{Src: "a.jpg", Alt: "Alpha", Detail: "<b>Bold</b>"}},
		{1, Slide{Src: "a2.jpg", Alt: "Alpha", Detail: "<b>Bold</b>"}},
		{2, Slide{Src: "a3.jpg", Alt: "Alpha three", Detail: "Plain text"}},
	}
	for _, tt := range tests {
		if slides[tt.index] != tt.want {
			t.Errorf("slide %d = %+v, want %+v", tt.index, slides[tt.index], tt.want)
		}
	}
}

func TestBuildSlides_NoGallery(t *testing.T) {
	slides := BuildSlides(Project{Src: "solo.jpg", Alt: "Solo"})
	if len(slides) != 1 || slides[0].Src != "solo.jpg" {
		t.Errorf("unexpected slides %+v", slides)
	}
}

func TestWrap_RangeAndPeriod(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for i := -30; i <= 30; i++ {
			got := Wrap(i, n)
			if got < 0 || got >= n {
				t.Fatalf("Wrap(%d, %d) = %d out of range", i, n, got)
			}
			if Wrap(i+n, n) != got || Wrap(i-n, n) != got {
				t.Fatalf("Wrap(%d, %d) not periodic", i, n)
			}
		}
	}
}

func TestWrap_Examples(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{5, 5, 0},
		{-1, 5, 4},
		{-6, 5, 4},
		{7, 1, 0},
		{-3, 1, 0},
		{3, 0, 0},
		{-9, 0, 0},
	}
	for _, tt := range tests {
		if got := Wrap(tt.i, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
