// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey implements survey assembly, response submission and result
aggregation on top of a Store.

# Encoding

Question rows and responses each keep an ordered list in a single text
column, joined by Separator:

	"What brand?|Nike|Adidas|Vans"  → text "What brand?", options [Nike Adidas Vans]
	"Nike|$50-$100"                 → answers [Nike $50-$100]

There is no escaping. Submit refuses answers containing the separator with
ErrMalformedRecord; question rows are trusted as stored.

# Positional Answers

The i-th answer of a response belongs to the survey's i-th question in
ascending question_number order. Results relies on this when tallying:

	svc := survey.NewService(store)
	res, err := svc.Results(ctx, "Favorite Shoe Brands", 1)

A response with fewer answers than questions only contributes to the
questions it covers; it still counts toward TotalResponses.

# Errors

  - ErrNotFound: school or survey title does not resolve
  - ErrMalformedRecord: submitted answers would corrupt the encoding
  - *StorageError: the Store failed; Unwrap exposes the cause

Use errors.Is and errors.As to tell them apart.
*/
package survey
