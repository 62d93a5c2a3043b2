package models

var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type VoterClass string

const (
	ClassSenior1 VoterClass = "s1"
	ClassSenior2 VoterClass = "s2"
	ClassSenior3 VoterClass = "s3"
	ClassSenior4 VoterClass = "s4"
	ClassSenior5 VoterClass = "s5"
	ClassSenior6 VoterClass = "s6"
	ClassStaff   VoterClass = "staff"
)

var ValidClasses = map[VoterClass]string{
	ClassSenior1: "Senior One",
	ClassSenior2: "Senior Two",
	ClassSenior3: "Senior Three",
	ClassSenior4: "Senior Four",
	ClassSenior5: "Senior Five",
	ClassSenior6: "Senior Six",
	ClassStaff:   "Staff",
}
