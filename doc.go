/*
Package pybat provides the runtime support that mechanically transpiled
Python 2 sources call into.

A translated module never reaches for Go's standard library directly.
Instead, the translator rewrites builtin calls and method sends into
the functions and types of this package, which delegate to the host
equivalents while keeping the semantics the translated code was written
against. The surface is deliberately small: truth testing, string and
character predicates, a dict adapter, a line-oriented file adapter, and
the handful of free functions (range, len, sum, int, enumerate,
isinstance, raw_input, print) that short scripts lean on.

Exceptions are panics. Transpiled call sites are expressions and cannot
thread error returns, so every runtime failure panics with a typed
exception value (*ValueError, *IOError, *KeyError, *EOFError,
*NotImplementedError). Transpiled try/except blocks become
recover-and-classify via IsInstance; Go callers embedding a translated
module can do the same, or test values with errors.As.

Some semantics are preserved from the translated corpus rather than
from CPython, because existing translations count on them:

  - IsAlpha treats decimal digits as alphabetic.
  - Range(lo, hi) includes hi; the interval is closed at both ends.
  - Sum raises ValueError on an empty sequence instead of returning 0.

Where the behavior of a builtin was never pinned down by the corpus
(whole-file Read, write mode, Flush), this package implements standard
buffered text file behavior: opening for write truncates, writes
accumulate until Flush or Close, and Close implies Flush.

Classes from translated sources register themselves with the class
registry (see Class and Register) so that isinstance tests and
__class__/__name__ lookups work without reflection at each call site.
The pybatfn command generates those registrations from a manifest.
*/
package pybat
