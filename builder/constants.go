// SPDX-License-Identifier: MIT

package builder

// Network names accepted by ByName.
const (
	NameER = "ER"
	NameLH = "LH"
)

// Surface state IDs shared by the ER and LH mechanisms.
const (
	StateFree   = "*"
	StateOH     = "*OH"
	StateO      = "*O"
	StateOOH    = "*OOH"
	StateOH2    = "*(OH)2"
	StateOOHads = "*O(OH)"
	StateOO     = "*O(O)"
)

// Step IDs of the two mechanisms.
const (
	Step1  = "1"
	Step2  = "2"
	Step3  = "3"
	Step4  = "4"
	Step21 = "21"
	Step22 = "22"
	Step31 = "31"
	Step32 = "32"
	Step5  = "5"
)

// Branch aggregate groups of the LH mechanism.
const (
	Group2 = "2"
	Group3 = "3"
)
