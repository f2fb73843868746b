// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/flightsurety/blob/master/LICENSE.md.

package models

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsurance_Amounts(t *testing.T) {
	for _, tc := range []struct {
		name           string
		insurance      Insurance
		expectedPrem   *big.Int
		expectedPayout *big.Int
		fails          bool
	}{
		{
			name:           "active",
			insurance:      Insurance{Premium: "1000000000000000000", State: InsuranceActive},
			expectedPrem:   big.NewInt(1000000000000000000),
			expectedPayout: big.NewInt(0),
		},
		{
			name:           "credited",
			insurance:      Insurance{Premium: "1", Payout: "1", State: InsuranceCredited},
			expectedPrem:   big.NewInt(1),
			expectedPayout: big.NewInt(1),
		},
		{
			name:      "corrupted",
			insurance: Insurance{Premium: "1e18", State: InsuranceActive},
			fails:     true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			premium, err := tc.insurance.PremiumAmount()
			if tc.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, 0, tc.expectedPrem.Cmp(premium))

			payout, err := tc.insurance.PayoutAmount()
			require.NoError(t, err)
			require.Equal(t, 0, tc.expectedPayout.Cmp(payout))
		})
	}
}
