// Package playback shows frame sequences at a fixed cadence.
//
// Player writes each frame and sleeps for whatever is left of the period, so
// slow frames shorten the following pause instead of stretching the animation.
// OpenSequence is the simpler form used for HTML artifacts: it hands each file
// to the system opener and waits a fixed delay.
package playback
