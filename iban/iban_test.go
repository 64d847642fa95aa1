package iban_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-iban/iban"
)

func TestParse_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("electronic", func(t *testing.T) {
		got, err := iban.Parse("DE44500105175407324931")
		require.NoError(t, err)
		assert.Equal(t, "DE", got.CountryCode())
		assert.Equal(t, 44, got.CheckDigits())
		assert.Equal(t, "44", got.CheckDigitsString())
		assert.Equal(t, "500105175407324931", got.BBAN())
		assert.Equal(t, "DE44500105175407324931", got.Electronic())
		assert.Equal(t, "DE44 5001 0517 5407 3249 31", got.String())
	})

	t.Run("paper", func(t *testing.T) {
		got, err := iban.Parse("LV80 BANK 0000 4351 9500 1")
		require.NoError(t, err)
		assert.Equal(t, "LV80BANK0000435195001", got.Electronic())
	})

	t.Run("invalid checksum", func(t *testing.T) {
		_, err := iban.Parse("DE4450010234607324931")
		require.ErrorIs(t, err, iban.ErrInvalidChecksum)
	})

	t.Run("misaligned spacing", func(t *testing.T) {
		_, err := iban.Parse("MR0 041 9")
		require.ErrorIs(t, err, iban.ErrInvalidFormat)
	})

	t.Run("unknown country keeps basic address", func(t *testing.T) {
		_, err := iban.Parse("ZZ07273912631298461")
		require.ErrorIs(t, err, iban.ErrUnknownCountry)

		var ce iban.CountryError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "ZZ", ce.Address.CountryCode())
		assert.Equal(t, 7, ce.Address.CheckDigits())
		assert.Equal(t, "273912631298461", ce.Address.BBANUnchecked())
	})

	t.Run("invalid bban keeps basic address", func(t *testing.T) {
		_, err := iban.Parse("AL84212110090000AB023569874")
		require.ErrorIs(t, err, iban.ErrInvalidBBAN)

		basic, ok := iban.BasicFrom(err)
		require.True(t, ok)
		want, err := iban.ParseBasic("AL84212110090000AB023569874")
		require.NoError(t, err)
		assert.Equal(t, want, basic)
	})
}

func TestParse_ValidCountries(t *testing.T) {
	t.Parallel()

	valid := []string{
		"AD1200012030200359100100",
		"AE070331234567890123456",
		"AL47212110090000000235698741",
		"AT611904300234573201",
		"AZ21NABZ00000000137010001944",
		"BA391290079401028494",
		"BE68539007547034",
		"BG80BNBG96611020345678",
		"BH67BMAG00001299123456",
		"BR1800360305000010009795493C1",
		"BY13NBRB3600900000002Z00AB00",
		"CH9300762011623852957",
		"CR05015202001026284066",
		"CY17002001280000001200527600",
		"CZ6508000000192000145399",
		"DE89370400440532013000",
		"DK5000400440116243",
		"DO28BAGR00000001212453611324",
		"EE382200221020145685",
		"ES9121000418450200051332",
		"FI2112345600000785",
		"FO6264600001631634",
		"FR1420041010050500013M02606",
		"GB29NWBK60161331926819",
		"GE29NB0000000101904917",
		"GI75NWBK000000007099453",
		"GL8964710001000206",
		"GR1601101250000000012300695",
		"GT82TRAJ01020000001210029690",
		"HR1210010051863000160",
		"HU42117730161111101800000000",
		"IE29AIBK93115212345678",
		"IL620108000000099999999",
		"IQ98NBIQ850123456789012",
		"IS140159260076545510730339",
		"IT60X0542811101000000123456",
		"JO94CBJO0010000000000131000302",
		"KW81CBKU0000000000001234560101",
		"KZ86125KZT5004100100",
		"LB62099900000001001901229114",
		"LC55HEMM000100010012001200023015",
		"LI21088100002324013AA",
		"LT121000011101001000",
		"LU280019400644750000",
		"LV80BANK0000435195001",
		"LY83002048000020100120361",
		"MC5811222000010123456789030",
		"MD24AG000225100013104168",
		"ME25505000012345678951",
		"MK07250120000058984",
		"MR1300020001010000123456753",
		"MT84MALT011000012345MTLCAST001S",
		"MU17BOMM0101101030300200000MUR",
		"NL91ABNA0417164300",
		"NO9386011117947",
		"PL61109010140000071219812874",
		"PS92PALS000000000400123456702",
		"PT50000201231234567890154",
		"QA58DOHB00001234567890ABCDEFG",
		"RO49AAAA1B31007593840000",
		"RS35260005601001611379",
		"SA0380000000608010167519",
		"SC18SSCB11010000000000001497USD",
		"SE4550000000058398257466",
		"SI56263300012039086",
		"SK3112000000198742637541",
		"SM86U0322509800000000270100",
		"ST68000100010051845310112",
		"SV62CENR00000000000000700025",
		"TL380080012345678910157",
		"TN5910006035183598478831",
		"TR330006100519786457841326",
		"UA213223130000026007233566001",
		"VA59001123000012345678",
		"VG96VPVG0000012345678901",
		"XK051212012345678906",
	}

	for _, s := range valid {
		s := s
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			got, err := iban.Parse(s)
			require.NoError(t, err)
			assert.Equal(t, s, got.Electronic())
			assert.True(t, iban.IsValid(s))

			again, err := iban.Parse(got.String())
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"",
		"DE4",
		"DE44",
		"DE445001023460732493147896512575467",
		"G416011012500000834112300695",
		"CHI300762011623852957",
		"DE44@0010234607324931",
		"$A0380000000648510167519",
		"tr330006100519786457465326",
		"DE4 450 010 517 540 732 493 1",
		"TR33000610051978645746532 ",
		" DE44500105175407324931",
		"DE44 5001 0517 5407 3249 31 ",
		"DE44  5001 0517 5407 3249 31",
		"DE44\t5001\t0517\t5407\t3249\t31",
		"DE44 5001 0517 5407 3249 3é",
		"DE00500105175407324931",
		"DE01500105175407324931",
	}

	for _, s := range invalid {
		_, err := iban.ParseBasic(s)
		assert.ErrorIs(t, err, iban.ErrInvalidFormat, "input %q", s)

		_, err = iban.Parse(s)
		assert.ErrorIs(t, err, iban.ErrInvalidFormat, "input %q", s)
	}
}

func TestParse_InvalidChecksum(t *testing.T) {
	t.Parallel()

	invalid := []string{
		"DE4450010234607324931",
		"GR16011012500000834112300695",
		"GB29NWBK60934331926819",
		"SA0380000000648510167519",
		"CH9300762011645852957",
		"TR330006100519786457465326",
	}

	for _, s := range invalid {
		_, err := iban.Parse(s)
		assert.ErrorIs(t, err, iban.ErrInvalidChecksum, "input %q", s)
		assert.False(t, iban.IsValid(s))
	}
}

func TestValidateCountry_InvalidBBAN(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"AD54BD012030200359100100",
		"AE32ABCD234567890123456",
		"AL84212110090000AB023569874",
		"AT24190430234533203672",
		"AZ75N00Z000000000137010001944",
		"BA6312900794010284AC",
		"BE095390075470",
		"BG83BN96611020345678",
		"BH93BG00001299123456",
		"BR15003605000010009795493C1",
		"BY56NBRB36009000002Z00AB00",
	}

	for _, s := range inputs {
		basic, err := iban.ParseBasic(s)
		require.NoError(t, err, "input %q", s)

		_, err = iban.ValidateCountry(basic)
		require.ErrorIs(t, err, iban.ErrInvalidBBAN, "input %q", s)

		var ce iban.CountryError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, basic, ce.Address)
	}
}

func TestParse_LowercaseBBANIsNormalized(t *testing.T) {
	t.Parallel()

	got, err := iban.Parse("GB29nwbk60161331926819")
	require.NoError(t, err)
	assert.Equal(t, "GB29NWBK60161331926819", got.Electronic())

	got, err = iban.Parse("GB29 nwbk 6016 1331 9268 19")
	require.NoError(t, err)
	assert.Equal(t, "GB29NWBK60161331926819", got.Electronic())
}

func TestIban_Identifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		bank     string
		bankOK   bool
		branch   string
		branchOK bool
	}{
		{in: "AD1200012030200359100100", bank: "0001", bankOK: true, branch: "2030", branchOK: true},
		{in: "DE89370400440532013000", bank: "37040044", bankOK: true},
		{in: "GB29NWBK60161331926819", bank: "NWBK", bankOK: true, branch: "601613", branchOK: true},
		{in: "IT60X0542811101000000123456", bank: "05428", bankOK: true, branch: "11101", branchOK: true},
		{in: "PL61109010140000071219812874", branch: "10901014", branchOK: true},
		{in: "JO94CBJO0010000000000131000302", bank: "CBJO", bankOK: true, branch: "0010", branchOK: true},
	}

	for _, tt := range tests {
		got := iban.MustParse(tt.in)

		bank, ok := got.BankIdentifier()
		assert.Equal(t, tt.bankOK, ok, tt.in)
		assert.Equal(t, tt.bank, bank, tt.in)

		branch, ok := got.BranchIdentifier()
		assert.Equal(t, tt.branchOK, ok, tt.in)
		assert.Equal(t, tt.branch, branch, tt.in)
	}
}

func TestIban_BasicRefinement(t *testing.T) {
	t.Parallel()

	full := iban.MustParse("NL91ABNA0417164300")
	basic, err := iban.ParseBasic("NL91 ABNA 0417 1643 00")
	require.NoError(t, err)

	assert.Equal(t, basic, full.Basic())
	assert.Equal(t, basic.BBANUnchecked(), full.BBAN())
	assert.Equal(t, basic.String(), full.String())
}

func TestZeroValues(t *testing.T) {
	t.Parallel()

	var b iban.BasicAddress
	assert.True(t, b.IsZero())
	assert.Equal(t, "", b.CountryCode())
	assert.Equal(t, "", b.CheckDigitsString())
	assert.Equal(t, 0, b.CheckDigits())
	assert.Equal(t, "", b.BBANUnchecked())
	assert.Equal(t, "", b.String())

	var i iban.Iban
	assert.True(t, i.IsZero())
	_, ok := i.BankIdentifier()
	assert.False(t, ok)
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { iban.MustParse("DE4450010234607324931") })
}

func TestCountryError_Message(t *testing.T) {
	t.Parallel()

	_, err := iban.Parse("ZZ07273912631298461")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "country code not recognized")
	assert.Contains(t, err.Error(), "ZZ")

	_, ok := iban.BasicFrom(iban.ErrInvalidFormat)
	assert.False(t, ok)
}
