package layout

import "testing"

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		opts         ContentOpts
		want         int
	}{
		{
			name:         "header only",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1},
			want:         39,
		},
		{
			name:         "header and footer",
			windowHeight: 40,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 2},
			want:         37,
		},
		{
			name:         "window too small",
			windowHeight: 2,
			opts:         ContentOpts{HeaderHeight: 1, FooterHeight: 2},
			want:         0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight, tt.opts)
			if got != tt.want {
				t.Errorf("ContentHeight(%d, %+v) = %d, want %d", tt.windowHeight, tt.opts, got, tt.want)
			}
		})
	}
}

func TestListSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 100, 27, 96, 23},
		{"tiny", 3, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := ListSize(tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ListSize(%d, %d) = (%d, %d), want (%d, %d)", tt.width, tt.height, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestInputWidth(t *testing.T) {
	tests := []struct {
		listWidth int
		want      int
	}{
		{0, MinInputWidth},
		{40, 32},
		{200, MaxInputWidth},
	}

	for _, tt := range tests {
		if got := InputWidth(tt.listWidth); got != tt.want {
			t.Errorf("InputWidth(%d) = %d, want %d", tt.listWidth, got, tt.want)
		}
	}
}
