package romaji

import (
	"bytes"
	"encoding/gob"
	"errors"
)

// Cache blob format (spec.md §6): 8-byte magic "IBROMAJI", 1-byte version
// (currently 1), 1-byte kanji-enabled flag, remaining bytes are the
// serialized dictionary body. Grounded on ib-romaji/src/cache.rs's
// serialize_to_vec/deserialize_from_slice, substituting a gob-encoded map
// payload for the Rust crate's double-array Aho-Corasick automaton bytes,
// since this dictionary is a plain-map lookup rather than an automaton (see
// DESIGN.md for why).
var (
	cacheMagic   = [8]byte{'I', 'B', 'R', 'O', 'M', 'A', 'J', 'I'}
	cacheVersion = byte(1)

	// ErrBadMagic is returned when a cache blob's header does not start
	// with the expected magic bytes.
	ErrBadMagic = errors.New("romaji: cache magic mismatch")
	// ErrVersionMismatch is returned when a cache blob's version byte does
	// not match the version this package writes.
	ErrVersionMismatch = errors.New("romaji: cache version mismatch")
	// ErrKanjiFlagMismatch is returned when a cache blob's kanji-enabled
	// flag does not match what the caller requested.
	ErrKanjiFlagMismatch = errors.New("romaji: cache kanji flag mismatch")
	// ErrTruncated is returned when a cache blob is shorter than the
	// fixed-size header.
	ErrTruncated = errors.New("romaji: cache blob truncated")
)

type cachePayload struct {
	Kana  map[string]string
	Kanji map[rune][]string
	Word  map[string][]string
}

// Serialize encodes the dictionary to a cache blob in the format documented
// above.
func (d *Dictionary) Serialize() ([]byte, error) {
	payload := cachePayload{Kana: d.kana, Kanji: d.kanji, Word: d.word}
	var body bytes.Buffer
	if err := gob.NewEncoder(&body).Encode(payload); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 10+body.Len())
	buf = append(buf, cacheMagic[:]...)
	buf = append(buf, cacheVersion)
	kanjiFlag := byte(0)
	if d.kanjiOn {
		kanjiFlag = 1
	}
	buf = append(buf, kanjiFlag)
	buf = append(buf, body.Bytes()...)
	return buf, nil
}

// Deserialize decodes a cache blob produced by Serialize. wantKanji must
// match the kanji-enabled flag stored in the blob, or the cache is rejected
// per spec.md §6 ("the kanji flag in the cache must equal the flag
// requested by the caller or the cache is discarded").
func Deserialize(data []byte, wantKanji bool) (*Dictionary, error) {
	if len(data) < 10 {
		return nil, ErrTruncated
	}
	if !bytes.Equal(data[0:8], cacheMagic[:]) {
		return nil, ErrBadMagic
	}
	if data[8] != cacheVersion {
		return nil, ErrVersionMismatch
	}
	kanjiOn := data[9] != 0
	if kanjiOn != wantKanji {
		return nil, ErrKanjiFlagMismatch
	}

	var payload cachePayload
	if err := gob.NewDecoder(bytes.NewReader(data[10:])).Decode(&payload); err != nil {
		return nil, err
	}

	return &Dictionary{
		kana:    payload.Kana,
		kanji:   payload.Kanji,
		word:    payload.Word,
		kanjiOn: kanjiOn,
	}, nil
}
