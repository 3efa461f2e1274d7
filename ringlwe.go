/*
Package ringlwe is a pure Go implementation of a public-key encryption scheme
for bit messages based on the Ring Learning With Errors (RLWE) problem over
Z_Q[X]/(X^N+1).

The library is organized as follows:

  - field: the integer field Z_Q, with fixed-width and arbitrary-precision
    backends, and its validation.
  - ring: polynomial arithmetic in Z_Q[X]/(X^N+1), samplers and serialization.
  - rlwe: parameters, key generation, encryption, decryption and noise analysis.
  - utils: randomness sources, buffered binary encoding and arbitrary
    precision floating point helpers.
*/
package ringlwe
