package main

import "testing"

func TestSSHCommand(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"snake.example.com", "22", "ssh snake.example.com"},
		{"snake.example.com", "", "ssh snake.example.com"},
		{"snake.example.com", "2222", "ssh -p 2222 snake.example.com"},
	}
	for _, tt := range tests {
		if got := sshCommand(tt.host, tt.port); got != tt.want {
			t.Errorf("sshCommand(%q, %q) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}
