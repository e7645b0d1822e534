// Package convert runs a conversion plan over one image or a directory of
// them.
//
// Images are processed strictly one at a time in name order: decode,
// preprocess, render, hand the frame to its sink, and drop the decoded image
// before the next one is opened. Terminal runs over a directory render every
// frame first and then play them back.
//
// # Failures
//
// Every failure is tied to its input and classified into one Kind:
//   - ImageDecodeError: unreadable, corrupt or unsupported file
//   - IOWriteError: destination could not be written
//   - InvalidSampleGeometry: image too small for the sampling grid
//   - UnsupportedConfiguration: options that cannot apply to the image
//
// PolicyAbort stops at the first failure; PolicyContinue records it and moves
// on, and the Report's summary reads "N succeeded, M failed".
package convert
