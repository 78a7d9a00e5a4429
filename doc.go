// Package crowdfund tracks a real-estate crowdfunding project: partner
// investments, itemized expenses, the payments that settle those expenses
// (by partners or from sale proceeds), and property sales.
//
// The Project aggregate is the single source of truth. It exposes append-only
// creation operations with validation (payment funding-source exclusivity, no
// over-payment of an expense) and derives every metric by re-scanning the
// collections: ownership percentages, expense payment statuses, and the
// net-sales accounting that offsets reinvested sale proceeds.
//
// A project is either populated through direct calls or built from a
// declarative YAML file (see File and LoadProject), whose amount fields may
// use addition-only expressions like "440000 + 690". All amounts are exact
// decimals; two-decimal rounding happens only when formatting.
package crowdfund
