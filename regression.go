package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same State() they
// are considered "the same", even though they may be implemented differently.
// The World is "the same" if it has:
// - the same round state, score, lives and time
// - the falling object of the same kind at the same position
// - the bucket at the same position, going in the same direction
// - the catch animation on the same frame at the same position
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.State)
	Serialize(buf, w.Score)
	Serialize(buf, w.Lives)
	Serialize(buf, w.ElapsedMs)
	Serialize(buf, w.Generator.Active.VariantIdx)
	Serialize(buf, w.Generator.Active.Pos)
	Serialize(buf, w.Generator.NSpawned)
	Serialize(buf, w.Bucket.Pos)
	Serialize(buf, w.Bucket.Direction)
	Serialize(buf, w.Catch.Active)
	Serialize(buf, w.Catch.Index)
	Serialize(buf, w.Catch.Pos)
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check if the
// state of the World at each frame in the playthrough is the same after a
// refactorization of the World.
//
// RegressionId is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId hasn't changed, the refactoring did not alter the
// playthrough.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(*p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
