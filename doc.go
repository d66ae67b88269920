// Package huffman implements Huffman coding of text into a self-describing
// text document.
//
// Encoding counts the characters of the input, builds a Huffman tree with a
// deterministic tie-break, derives a prefix-free code for each character,
// and writes the code table followed by the bitstream as '0'/'1' text:
//
//     b:0;a:10;c:11
//     10100001111
//
// Decoding validates the document against that grammar, rebuilds the code
// table, and matches the bitstream greedily against it.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
