package services

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestValidatePostForm(t *testing.T) {
	viper.Set("content.max_post_length", 30)

	for _, tc := range []struct {
		name    string
		form    PostForm
		wantErr bool
	}{
		{"valid", PostForm{Text: "a perfectly fine post"}, false},
		{"empty text", PostForm{Text: ""}, true},
		{"at the bound", PostForm{Text: strings.Repeat("x", 30)}, false},
		{"over the bound", PostForm{Text: strings.Repeat("x", 31)}, true},
		{"valid image", PostForm{Text: "ok", ImageName: "cat.png"}, false},
		{"uppercase extension", PostForm{Text: "ok", ImageName: "cat.JPG"}, false},
		{"bad image type", PostForm{Text: "ok", ImageName: "notes.txt"}, true},
		{"valid attachments", PostForm{Text: "ok", Attachments: []string{"a.png", "b.jpg"}}, false},
		{"bad attachment type", PostForm{Text: "ok", Attachments: []string{"a.png", "b.exe"}}, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			errs := ValidatePostForm(tc.form)
			if tc.wantErr && len(errs) == 0 {
				t.Error("expected field errors, got none")
			}
			if !tc.wantErr && len(errs) > 0 {
				t.Errorf("unexpected field errors: %v", errs)
			}
		})
	}
}

func TestValidateCommentForm(t *testing.T) {
	if errs := ValidateCommentForm(CommentForm{Text: "nice post"}); len(errs) > 0 {
		t.Errorf("unexpected field errors: %v", errs)
	}
	if errs := ValidateCommentForm(CommentForm{}); len(errs) == 0 {
		t.Error("empty comment passed validation")
	}
}
