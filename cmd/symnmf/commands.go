// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/matrixio"
	"github.com/katalvlaran/symnmf/pipeline"
)

func (a *app) goalCmd() *cobra.Command {
	var k int
	cmd := &cobra.Command{
		Use:   "goal <sym|ddg|norm|symnmf> <file>",
		Short: "Print the similarity, degree, normalized or factor matrix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal, err := pipeline.ParseGoal(args[0])
			if err != nil {
				return err
			}
			points, err := a.load(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			out, err := pipeline.RunGoal(points, goal, k, a.options()...)
			if err != nil {
				return err
			}
			return matrixio.Write(a.stdout, out)
		},
	}
	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of clusters (symnmf goal)")

	return cmd
}

func (a *app) kmeansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kmeans <k> [max_iter] <file>",
		Short: "K-means initialized from the first k points",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseK(args[0])
			if err != nil {
				return err
			}
			maxIter := a.cfg.KMeans.PlainMaxIter
			if len(args) == 3 {
				if maxIter, err = parseIter(args[1]); err != nil {
					return err
				}
			}
			points, err := a.load(cmd.Context(), args[len(args)-1])
			if err != nil {
				return err
			}
			res, _, err := pipeline.RunKMeans(points, k, maxIter, a.cfg.KMeans.Tolerance,
				a.options(pipeline.WithInit(kmeans.InitFirstK))...)
			if err != nil {
				return err
			}
			return matrixio.Write(a.stdout, res.Centroids)
		},
	}
}

func (a *app) kmeansPPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kmeanspp <k> [max_iter] <eps> <file1> <file2>",
		Short: "K-means++ over two files joined on their first column",
		Long: `kmeanspp inner-joins file1 and file2 on their first column (ascending by key,
key dropped), seeds k centroids with K-means++ and refines them.
The chosen point indices are printed on the first line, followed by the centroids.`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseK(args[0])
			if err != nil {
				return err
			}
			maxIter := a.cfg.KMeans.MaxIter
			rest := args[1:]
			if len(args) == 5 {
				if maxIter, err = parseIter(args[1]); err != nil {
					return err
				}
				rest = args[2:]
			}
			eps, err := parseTolerance(rest[0])
			if err != nil {
				return err
			}
			left, err := a.load(cmd.Context(), rest[1])
			if err != nil {
				return err
			}
			right, err := a.load(cmd.Context(), rest[2])
			if err != nil {
				return err
			}
			points, err := matrixio.JoinByKey(left, right)
			if err != nil {
				return err
			}

			res, chosen, err := pipeline.RunKMeans(points, k, maxIter, eps,
				a.options(pipeline.WithInit(kmeans.InitKMeansPlusPlus))...)
			if err != nil {
				return err
			}
			if err = matrixio.WriteIndices(a.stdout, chosen); err != nil {
				return err
			}
			return matrixio.Write(a.stdout, res.Centroids)
		},
	}
}

func (a *app) analysisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analysis <k> <file>",
		Short: "Compare symNMF and K-means by mean silhouette score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseK(args[0])
			if err != nil {
				return err
			}
			points, err := a.load(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			res, err := pipeline.Analyze(points, k, a.cfg.KMeans.MaxIter, a.cfg.KMeans.Tolerance, a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "nmf: %.4f\n", res.NMF)
			fmt.Fprintf(a.stdout, "kmeans: %.4f\n", res.KMeans)
			return nil
		},
	}
}

func (a *app) elbowCmd() *cobra.Command {
	var maxK int
	cmd := &cobra.Command{
		Use:   "elbow <file>",
		Short: "Print K-means inertia for k = 2..max-k",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if maxK >= points.Rows() {
				maxK = points.Rows() - 1
			}
			curve, err := pipeline.Elbow(points, maxK, a.cfg.KMeans.MaxIter, a.cfg.KMeans.Tolerance, a.options()...)
			if err != nil {
				return err
			}
			for _, p := range curve {
				fmt.Fprintf(a.stdout, "%d,%.4f\n", p.K, p.Inertia)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxK, "max-k", 10, "largest cluster count")

	return cmd
}

func (a *app) suggestCmd() *cobra.Command {
	var maxK int
	cmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "Suggest k from the eigengap of the normalized similarity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if maxK >= points.Rows() {
				maxK = points.Rows() - 1
			}
			k, _, err := pipeline.SuggestK(points, maxK, a.options()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, k)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxK, "max-k", 10, "largest cluster count considered")

	return cmd
}
