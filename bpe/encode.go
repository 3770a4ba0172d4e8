package bpe

import "fmt"

// EncodeOrdinary encodes text into tokens, ignoring special tokens
// entirely — any special-token text in the input is tokenized as ordinary
// text. This is the fast path used internally by Encode once special
// tokens have been carved out.
func (e *Encoding) EncodeOrdinary(text string) ([]Token, error) {
	pieces, err := splitPreTokens(text, e.preRegex)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for _, piece := range pieces {
		tokens = append(tokens, e.encodePiece(piece)...)
	}
	return tokens, nil
}

func (e *Encoding) encodePiece(piece []byte) []Token {
	if e.cache != nil {
		if cached, ok := e.cache.get(string(piece)); ok {
			return cached
		}
	}

	tokens := bytePairEncode(piece, e.ranks)

	if e.cache != nil {
		e.cache.put(string(piece), tokens)
	}
	return tokens
}

// Encode encodes text into tokens. allowedSpecial names the special tokens
// that may appear literally in text and be encoded as single tokens (pass
// []string{"all"} to allow every special token this Encoding defines).
// disallowedSpecial names special tokens whose presence anywhere in text
// is an error (pass []string{"all"} to forbid every special token not
// explicitly allowed). A name that is both allowed and disallowed is
// treated as allowed.
//
// Per spec §4.4 step 1 / §7, the entire input is scanned for disallowed
// special tokens before any token is emitted: encoding either succeeds in
// full or fails without a partial result.
func (e *Encoding) Encode(text string, allowedSpecial, disallowedSpecial []string) ([]Token, error) {
	allowed := specialTokenSet(allowedSpecial, e.special)
	disallowed := specialTokenSet(disallowedSpecial, e.special)
	for name := range allowed {
		delete(disallowed, name)
	}

	if found, err := findDisallowedSpecial(text, disallowed, e.specialRegex); err != nil {
		return nil, err
	} else if found != "" {
		return nil, newEncodingError("encode", fmt.Sprintf("disallowed special token found in text: %q", found))
	}

	segments, isSpecial, err := splitOnAllowedSpecial(text, allowed, e.specialRegex)
	if err != nil {
		return nil, err
	}

	var tokens []Token
	for i, segment := range segments {
		if isSpecial[i] {
			tokens = append(tokens, e.special[segment])
			continue
		}
		ordinary, err := e.EncodeOrdinary(segment)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, ordinary...)
	}
	return tokens, nil
}

// EncodeSingleToken returns the token ID for piece if the whole of piece is
// exactly one entry in the merge table or special-token map, and an error
// otherwise.
func (e *Encoding) EncodeSingleToken(piece []byte) (Token, error) {
	if tok, ok := e.special[string(piece)]; ok {
		return tok, nil
	}
	if tok, ok := e.ranks[string(piece)]; ok {
		return tok, nil
	}
	return 0, newEncodingError("encode_single_token", fmt.Sprintf("no single token for %q", piece))
}

// CountTokens returns len(Encode(text, allowedSpecial, disallowedSpecial))
// without retaining the intermediate token slice, for callers that only
// need a count.
func (e *Encoding) CountTokens(text string, allowedSpecial, disallowedSpecial []string) (int, error) {
	tokens, err := e.Encode(text, allowedSpecial, disallowedSpecial)
	if err != nil {
		return 0, err
	}
	return len(tokens), nil
}

// EncodeOrdinaryBatch encodes each input independently, preserving order.
func (e *Encoding) EncodeOrdinaryBatch(texts []string) ([][]Token, error) {
	out := make([][]Token, len(texts))
	for i, text := range texts {
		tokens, err := e.EncodeOrdinary(text)
		if err != nil {
			return nil, err
		}
		out[i] = tokens
	}
	return out, nil
}

// EncodeBatch encodes each input independently, preserving order, using
// the same allowed/disallowed special-token rules for every input.
func (e *Encoding) EncodeBatch(texts []string, allowedSpecial, disallowedSpecial []string) ([][]Token, error) {
	out := make([][]Token, len(texts))
	for i, text := range texts {
		tokens, err := e.Encode(text, allowedSpecial, disallowedSpecial)
		if err != nil {
			return nil, err
		}
		out[i] = tokens
	}
	return out, nil
}
