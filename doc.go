/*
 * doc.go, part of goKin.
 *
 * Copyright 2024 The goKin authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package kin is the main package of the goKin library. It computes geometric descriptors
of sampled movement trajectories, such as the path of a hand or a VR controller reaching
for one of two possible targets. All descriptors measure how the path bows away from the
chord, the straight segment joining its first and last samples.

	**goKin Capabilities**

    Maximum perpendicular deviation (MaximumDeviation2D, MaximumDeviation3D): the largest
	signed distance from an interior sample to the chord, optionally divided by the chord length.

    Total curvature (TotalCurvature2D, TotalCurvature3D): the mean signed distance from
	the interior samples to the chord.

    Maximal log ratio (MaximalLogRatio2D, MaximalLogRatio3D): the largest value over all
	samples of ln(d_correct/d_alternative), the log ratio of the distances to the correct
	and alternative targets.

    Concurrent evaluation of many trials (DescribeAll).

In 2D the sign of a distance is the sign of the angle between the chord and the sample (SignedAngle2D).
In 3D it tells on which side of the vertical plane containing the chord the sample lies (PlaneSign3D).
In both cases the convention flips when the last sample has a negative x coordinate, so trajectories
towards targets at either side of the y axis have the same handedness.

Trajectories can be given as slices of coordinates or as a Traj, which wraps a gonum mat.Dense
with one sample per row.

The subpackages traj/tracker, prep and trajplot read tracker files, prepare the trajectories
(resampling, filtering, velocity and movement onset) and plot the results.
They are not needed to use this package.*/
package kin
