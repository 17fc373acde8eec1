// SPDX-License-Identifier: MIT

package flow_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pennant/flow"
)

// Entry point for running the shared solver suite against Ford–Fulkerson.
func TestFordFulkersonSuite(t *testing.T) {
	suite.Run(t, &SolverSuite{solve: flow.FordFulkerson})
}
