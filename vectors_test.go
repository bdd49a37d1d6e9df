package headsum

import "strings"

var vectors = []struct {
	input string
	hash  string
}{
	{"", "d41d8cd98f00b204e9800998ecf8427e"},
	{"a", "0cc175b9c0f1b6a831c399e269772661"},
	{"abc", "900150983cd24fb0d6963f7d28e17f72"},
	{"message digest", "f96b697d7cb7938d525a2f31aaf161d0"},
	{"abcdefghijklmnopqrstuvwxyz", "c3fcd3d76192e4007dfb496cca67e13b"},
	{"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", "d174ab98d277d9f5a5611c2c9f419d9f"},
	{strings.Repeat("1234567890", 8), "57edf4a22be3c955ac49da2e2107b67a"},
	{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},

	// around the padding boundary and block edges
	{strings.Repeat("a", 55), "ef1772b6dff9a122358552954ad0df65"},
	{strings.Repeat("a", 56), "3b0c8ac703f828b04c6c197006d17218"},
	{strings.Repeat("a", 57), "652b906d60af96844ebd21b674f35e93"},
	{strings.Repeat("a", 63), "b06521f39153d618550606be297466d5"},
	{strings.Repeat("a", 64), "014842d480b571495a4a0363793f7367"},
	{strings.Repeat("a", 65), "c743a45e0d2e6a95cb859adae0248435"},
	{strings.Repeat("a", 119), "8a7bd0732ed6a28ce75f6dabc90e1613"},
	{strings.Repeat("a", 120), "5f61c0ccad4cac44c75ff505e1f1e537"},
	{strings.Repeat("a", 128), "e510683b3f5ffe4093d021808bc6ff70"},
}
