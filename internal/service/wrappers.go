// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// ReviewServiceWrapper defines middleware composition for ReviewService.
// Implementations wrap an existing ReviewService to add behavior such as
// validation.
type ReviewServiceWrapper interface {
	Wrap(ReviewService) ReviewService // returns a decorated ReviewService applying additional behavior
}

// WatchlistServiceWrapper is the WatchlistService counterpart of
// ReviewServiceWrapper.
type WatchlistServiceWrapper interface {
	Wrap(WatchlistService) WatchlistService
}
