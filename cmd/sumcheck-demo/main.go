// Command sumcheck-demo reads a JSON description of a polynomial (or, for
// the product variant, several factors) and a protocol variant from
// stdin, drives an honest prover and verifier through the full protocol,
// and writes a JSON verdict to stdout. Library packages return errors;
// this binary is the only place in the repository that calls
// log.Fatalf/log.Printf.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"

	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/field"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/poly"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/internal/sumcheck/transcript"
	"github.com/0xkitetsu-dinesh/sumcheck-mle/pkg/sumcheck"
)

// monomialSpec is the wire shape of a single monomial: a coefficient and
// its term, keyed by variable index (as a decimal string, since JSON
// object keys are always strings) mapped to that variable's power.
type monomialSpec struct {
	Coeff int64          `json:"coeff"`
	Term  map[string]int `json:"term"`
}

// polynomialSpec is the wire shape of a sparse multivariate polynomial.
type polynomialSpec struct {
	NumVars   int            `json:"num_vars"`
	Monomials []monomialSpec `json:"monomials"`
}

// request is the JSON object read from stdin. Polynomial is used by the
// naive and ml variants; Factors is used by pml.
type request struct {
	Variant    string           `json:"variant"`
	Modulus    int64            `json:"modulus"`
	HashLabel  string           `json:"hash_label"`
	Polynomial *polynomialSpec  `json:"polynomial,omitempty"`
	Factors    []polynomialSpec `json:"factors,omitempty"`
}

// response is the JSON verdict written to stdout.
type response struct {
	Variant    string   `json:"variant"`
	Accept     bool     `json:"accept"`
	Claim      string   `json:"claim"`
	Challenges []string `json:"challenges"`
}

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			fatal(fmt.Sprintf("failed to read request: %v", err))
		}
		fatal("no request on stdin")
	}

	var req request
	if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
		fatal(fmt.Sprintf("failed to parse request: %v", err))
	}

	cfg := sumcheck.DefaultConfig().WithVariant(sumcheck.Variant(req.Variant))
	if req.Modulus != 0 {
		cfg = cfg.WithFieldModulus(big.NewInt(req.Modulus))
	}
	if req.HashLabel != "" {
		cfg = cfg.WithHashLabel(req.HashLabel)
	}
	if cfg.Variant == sumcheck.VariantPML {
		cfg = cfg.WithPMLFactors(len(req.Factors))
	}
	if err := cfg.Validate(); err != nil {
		fatal(fmt.Sprintf("invalid config: %v", err))
	}

	f, err := cfg.Field()
	if err != nil {
		fatal(fmt.Sprintf("failed to build field: %v", err))
	}
	src := transcript.NewChannel(cfg.HashLabel)

	log.Printf("sumcheck-demo: driving %s variant over modulus %s", cfg.Variant, cfg.FieldModulus)

	var verdict *sumcheck.Verdict
	var claim field.Element
	var challenges []field.Element
	switch cfg.Variant {
	case sumcheck.VariantNaive:
		verdict, claim, challenges, err = runNaive(f, req.Polynomial, src)
	case sumcheck.VariantML:
		verdict, claim, challenges, err = runML(f, req.Polynomial, src)
	case sumcheck.VariantPML:
		verdict, claim, challenges, err = runPML(f, req.Factors, src)
	default:
		fatal(fmt.Sprintf("unknown variant %q", cfg.Variant))
	}
	if err != nil {
		fatal(fmt.Sprintf("sum-check failed: %v", err))
	}

	log.Printf("sumcheck-demo: verdict accept=%v", verdict.Accept)

	resp := response{
		Variant:    string(cfg.Variant),
		Accept:     verdict.Accept,
		Claim:      claim.String(),
		Challenges: stringifyAll(challenges),
	}
	out, err := json.Marshal(resp)
	if err != nil {
		fatal(fmt.Sprintf("failed to serialise verdict: %v", err))
	}
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func runNaive(f field.Field, spec *polynomialSpec, src *transcript.Channel) (*sumcheck.Verdict, field.Element, []field.Element, error) {
	if spec == nil {
		return nil, nil, nil, fmt.Errorf("naive variant requires a \"polynomial\" field")
	}
	g, err := toSparse(f, *spec)
	if err != nil {
		return nil, nil, nil, err
	}
	prover := sumcheck.NewNaiveProver(g)
	verifier := sumcheck.NewNaiveVerifier(f, g.NumVars(), prover.Claim(), g)
	verdict, err := sumcheck.DriveNaive(prover, verifier, src)
	if err != nil {
		return nil, nil, nil, err
	}
	return verdict, prover.Claim(), verifier.Challenges(), nil
}

func runML(f field.Field, spec *polynomialSpec, src *transcript.Channel) (*sumcheck.Verdict, field.Element, []field.Element, error) {
	if spec == nil {
		return nil, nil, nil, fmt.Errorf("ml variant requires a \"polynomial\" field")
	}
	g, err := toSparse(f, *spec)
	if err != nil {
		return nil, nil, nil, err
	}
	prover, err := sumcheck.NewMLProver(g)
	if err != nil {
		return nil, nil, nil, err
	}
	verifier := sumcheck.NewMLVerifier(f, g.NumVars(), prover.Claim(), g)
	verdict, err := sumcheck.DriveML(prover, verifier, src)
	if err != nil {
		return nil, nil, nil, err
	}
	return verdict, prover.Claim(), verifier.Challenges(), nil
}

func runPML(f field.Field, specs []polynomialSpec, src *transcript.Channel) (*sumcheck.Verdict, field.Element, []field.Element, error) {
	if len(specs) == 0 {
		return nil, nil, nil, fmt.Errorf("pml variant requires a non-empty \"factors\" field")
	}
	factors := make([]*poly.Sparse, len(specs))
	oracles := make([]sumcheck.Oracle, len(specs))
	for i, spec := range specs {
		g, err := toSparse(f, spec)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("factor %d: %w", i, err)
		}
		factors[i] = g
		oracles[i] = g
	}
	prover, err := sumcheck.NewPMLProver(factors)
	if err != nil {
		return nil, nil, nil, err
	}
	oracle, err := sumcheck.NewProductOracle(oracles...)
	if err != nil {
		return nil, nil, nil, err
	}
	verifier := sumcheck.NewPMLVerifier(f, factors[0].NumVars(), prover.NumFactors(), prover.Claim(), oracle)
	verdict, err := sumcheck.DrivePML(prover, verifier, src)
	if err != nil {
		return nil, nil, nil, err
	}
	return verdict, prover.Claim(), verifier.Challenges(), nil
}

// toSparse converts a polynomialSpec into a poly.Sparse over f, parsing
// each monomial's term keys back into variable indices.
func toSparse(f field.Field, spec polynomialSpec) (*poly.Sparse, error) {
	monomials := make([]poly.Monomial, len(spec.Monomials))
	for i, m := range spec.Monomials {
		term := poly.Term{}
		for k, power := range m.Term {
			v, err := strconv.Atoi(k)
			if err != nil {
				return nil, fmt.Errorf("monomial %d: invalid variable index %q: %w", i, k, err)
			}
			term[v] = uint(power)
		}
		monomials[i] = poly.Monomial{Coeff: f.NewElement(m.Coeff), Term: term}
	}
	return poly.NewSparse(f, spec.NumVars, monomials)
}

func stringifyAll(elems []field.Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.String()
	}
	return out
}

func fatal(msg string) {
	log.Fatalf("sumcheck-demo: %s", msg)
}
