package storage

import "testing"

func TestS3DirectURL(t *testing.T) {
	tests := []struct {
		cfg  S3Config
		want string
	}{
		{S3Config{Bucket: "photos", Region: "eu-central-1"}, "https://photos.s3.eu-central-1.amazonaws.com"},
		{S3Config{Bucket: "photos", Endpoint: "http://localhost:9000/"}, "http://localhost:9000/photos"},
	}
	for _, tt := range tests {
		if got := tt.cfg.directURL(); got != tt.want {
			t.Errorf("directURL() = %q, want %q", got, tt.want)
		}
	}
}

func TestS3LoadOptions(t *testing.T) {
	if n := len(S3Config{Region: "eu-central-1"}.loadOptions()); n != 1 {
		t.Errorf("without keys: %d options, want 1", n)
	}
	if n := len(S3Config{Region: "eu-central-1", AccessKey: "a", SecretKey: "b"}.loadOptions()); n != 2 {
		t.Errorf("with keys: %d options, want 2", n)
	}
}
