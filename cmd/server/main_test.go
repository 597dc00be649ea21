package main

import (
	"testing"

	"skirmish-server/pkg/utils"
)

func TestParseSeed(t *testing.T) {
	if parseSeed("42") != 42 || parseSeed("0") != 0 || parseSeed("-7") != -7 {
		t.Error("decimal seeds must be used as is")
	}
	if parseSeed("castle") != utils.StringToSeed("castle") {
		t.Error("words must be hashed")
	}
	if parseSeed("castle") == parseSeed("keep") {
		t.Error("different words should give different seeds")
	}
}

func TestResolvePort(t *testing.T) {
	t.Setenv("SKIRMISH_PORT", "9000")
	if resolvePort("7000") != "7000" {
		t.Error("flag wins over env")
	}
	if resolvePort("") != "9000" {
		t.Error("env is used when the flag is empty")
	}
	t.Setenv("SKIRMISH_PORT", "")
	if resolvePort("") != "8080" {
		t.Error("default port is 8080")
	}
}
