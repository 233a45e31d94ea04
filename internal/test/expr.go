package test

import (
	"math/rand"
	"strings"
)

const validTokens = "x;y;rate;total;price2;1;42;365;3.14;0.5;.25;1000;+;-;*;/;(;)"

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	var toks []string
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}
