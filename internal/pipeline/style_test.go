package pipeline

import "testing"

func TestTranslateStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		style string
		want  string
	}{
		{
			name:  "empty style",
			style: "",
			want:  "width:16px; height:16px; vertical-align:middle; color:currentColor;",
		},
		{
			name:  "all recognized declarations",
			style: "font-size:24px;color:#ff0000;margin-right:4px;",
			want:  "width:24px; height:24px; vertical-align:middle; color:#ff0000; margin-right:4px;",
		},
		{
			name:  "32px",
			style: "font-size:32px",
			want:  "width:32px; height:32px; vertical-align:middle; color:currentColor;",
		},
		{
			name:  "12px",
			style: "font-size:12px;",
			want:  "width:12px; height:12px; vertical-align:middle; color:currentColor;",
		},
		{
			name:  "spaces inside declarations",
			style: " font-size : 24px ; color : rgb(0, 0, 0) ",
			want:  "width:24px; height:24px; vertical-align:middle; color:rgb(0, 0, 0);",
		},
		{
			name:  "size priority prefers 24px over 12px",
			style: "font-size:12px;font-size:24px",
			want:  "width:24px; height:24px; vertical-align:middle; color:currentColor;",
		},
		{
			name:  "unrecognized size falls back",
			style: "font-size:20px",
			want:  "width:16px; height:16px; vertical-align:middle; color:currentColor;",
		},
		{
			name:  "vertical-align is replaced",
			style: "vertical-align:top;color:#fff",
			want:  "width:16px; height:16px; vertical-align:middle; color:#fff;",
		},
		{
			name:  "other declarations dropped",
			style: "display:inline-block;padding:2px;margin-right:6px",
			want:  "width:16px; height:16px; vertical-align:middle; color:currentColor; margin-right:6px;",
		},
		{
			name:  "first color wins",
			style: "color:#111;color:#222",
			want:  "width:16px; height:16px; vertical-align:middle; color:#111;",
		},
		{
			name:  "empty color value ignored",
			style: "color:;",
			want:  "width:16px; height:16px; vertical-align:middle; color:currentColor;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := translateStyle(tt.style).String()
			if got != tt.want {
				t.Errorf("translateStyle(%q) = %q, want %q", tt.style, got, tt.want)
			}
		})
	}
}

func TestSplitAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		attrs        string
		wantStyle    string
		wantResidual string
	}{
		{
			name: "empty",
		},
		{
			name:      "style only",
			attrs:     ` style="color:red"`,
			wantStyle: "color:red",
		},
		{
			name:         "style between attributes",
			attrs:        ` id="x" style="a:b" title="t"`,
			wantStyle:    "a:b",
			wantResidual: `id="x" title="t"`,
		},
		{
			name:         "stray declarations removed",
			attrs:        ` font-size:24px; vertical-align:top; margin-right:2px; color:red; data-x="1"`,
			wantResidual: `data-x="1"`,
		},
		{
			name:         "background-color inside another attribute survives",
			attrs:        ` data-note="background-color:blue"`,
			wantResidual: `data-note="background-color:blue"`,
		},
		{
			name:         "single-quoted style",
			attrs:        ` style='font-size:24px;color:red' title="t"`,
			wantStyle:    "font-size:24px;color:red",
			wantResidual: `title="t"`,
		},
		{
			name:      "single-quoted style holding double quotes",
			attrs:     ` style='font-family:"Inter"'`,
			wantStyle: `font-family:"Inter"`,
		},
		{
			name:         "spaced style attribute",
			attrs:        ` style = "font-size:12px" aria-hidden="true"`,
			wantStyle:    "font-size:12px",
			wantResidual: `aria-hidden="true"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			style, residual := splitAttrs(tt.attrs)
			if style != tt.wantStyle {
				t.Errorf("style = %q, want %q", style, tt.wantStyle)
			}
			if residual != tt.wantResidual {
				t.Errorf("residual = %q, want %q", residual, tt.wantResidual)
			}
		})
	}
}

func TestParseDeclarations(t *testing.T) {
	t.Parallel()

	got := parseDeclarations("Font-Size: 24px; ;novalue; color:#fff")
	want := []declaration{
		{prop: "font-size", value: "24px"},
		{prop: "color", value: "#fff"},
	}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%+v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSplitAttrs_DataStyleIsNotStyle(t *testing.T) {
	t.Parallel()

	style, residual := splitAttrs(` data-style="x" style="color:red"`)
	if style != "color:red" {
		t.Errorf("style = %q, want %q", style, "color:red")
	}
	if residual != `data-style="x"` {
		t.Errorf("residual = %q, want %q", residual, `data-style="x"`)
	}
}
