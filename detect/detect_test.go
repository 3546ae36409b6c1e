package detect

import "testing"

func TestLanguage(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english prose",
			text: "This document describes how to install and configure the service on a fresh system.",
			want: "English",
		},
		{
			name: "russian prose",
			text: "Этот документ описывает установку и настройку сервиса в новой системе.",
			want: "Russian",
		},
		{
			name: "japanese prose",
			text: "このドキュメントでは、新しいシステムにサービスをインストールして設定する方法を説明します。",
			want: "Japanese",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Language(tc.text)
			if !ok {
				t.Fatalf("Language(%q) not confident, want %s", tc.text, tc.want)
			}
			if got != tc.want {
				t.Fatalf("Language() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLanguageEmptyInput(t *testing.T) {
	if got, ok := Language(""); ok {
		t.Fatalf("Language(\"\") = %q, want no result", got)
	}
}
